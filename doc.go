/*
Package aabbtree implements a dynamic, height-balanced tree of axis-aligned
bounding boxes.

AABB trees

An AABB tree indexes bounding boxes together with opaque client payloads.
Leaf nodes carry exactly one payload and the box it was inserted with; inner
nodes carry exactly two subtrees and cache the merge of their children's
bounds. The tree supports incremental insertion and removal and keeps itself
weakly height-balanced (AVL-style: sibling subtree heights never differ by
more than one), which bounds the cost of descending the tree.

Insertion descends greedily into whichever child's bounds would grow the
least by absorbing the new box. This keeps sibling subtrees spatially
compact, which is the entire reason the structure stays useful: boxes that
are close together end up under the same inner nodes, and containment checks
prune whole subtrees during removal.

When an insertion or removal leaves an inner node with subtree heights
differing by more than one level, the node rebalances locally by relocating
a single leaf from the taller subtree into the shorter one. The leaf is
chosen with the same least-growth heuristic used for insertion. The choice
is greedy and per-level local, not globally optimal; the resulting tree
shape is deterministic but not guaranteed minimal.

The tree is not safe for concurrent mutation. Callers that share a tree
across goroutines must serialize all mutating calls; read-only queries may
run concurrently with each other but never with an insert or remove.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2023–24, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package aabbtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
