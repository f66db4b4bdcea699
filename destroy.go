package barctrie

// DestroyTrie tears down t, invoking destruct on every non-nil payload it
// finds at a node's Data, in post-order, except the root's (which never
// carries a payload in this implementation -- the root's Data field is
// unused, trie metadata lives on the Trie struct itself rather than being
// smuggled into the root node's payload slot, closing the FIXME the
// original design flags around empty-string insertion landing on the
// root). destruct may be nil, in which case payloads are simply dropped.
//
// Go's garbage collector reclaims the node graph itself; DestroyTrie's
// job is purely to run destruct over caller-owned payloads and to sever
// the trie's references so nothing is retained past this call.
func DestroyTrie(t *Trie, destruct func(any)) {
	if t == nil {
		return
	}
	for i := range t.miles {
		t.miles[i] = nil
	}
	destroyNode(t.root, destruct)
	t.root = nil
}

// destroyNode recurses post-order over children slots 0..4 (slot symEOS
// is never populated), invoking destruct on n's own payload after its
// children have been released.
func destroyNode(n *Node, destruct func(any)) {
	if n == nil {
		return
	}
	for s := Symbol(0); s <= symN; s++ {
		destroyNode(n.children[s], destruct)
		n.children[s] = nil
	}
	if n.Data != nil && destruct != nil {
		destruct(n.Data)
	}
	n.Data = nil
}
