package dictionary

// node is one letter in the prefix tree
type node struct {
	isWord bool
	edges  map[rune]*node
}

func newNode() *node {
	return &node{edges: make(map[rune]*node)}
}

// Trie is a prefix tree of lowercase words
type Trie struct {
	root  *node
	count int
}

// NewTrie builds a trie holding the given words
func NewTrie(words ...string) *Trie {
	t := &Trie{root: newNode()}
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

// Insert adds a word, returning false if it was already present
func (t *Trie) Insert(word string) bool {
	curr := t.root
	for _, letter := range word {
		next, ok := curr.edges[letter]
		if !ok {
			next = newNode()
			curr.edges[letter] = next
		}
		curr = next
	}
	if curr.isWord {
		return false
	}
	curr.isWord = true
	t.count++
	return true
}

// Contains returns true if word was inserted
func (t *Trie) Contains(word string) bool {
	n := t.find(word)
	return n != nil && n.isWord
}

// HasPrefix returns true if some inserted word starts with prefix
func (t *Trie) HasPrefix(prefix string) bool {
	return t.find(prefix) != nil
}

// Len returns the number of distinct words
func (t *Trie) Len() int {
	return t.count
}

func (t *Trie) find(s string) *node {
	curr := t.root
	for _, letter := range s {
		next, ok := curr.edges[letter]
		if !ok {
			return nil
		}
		curr = next
	}
	return curr
}
