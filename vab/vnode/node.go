// Package vnode holds the named pieces a VAB decodes into: the header and one
// binary node per waveform, in file order.
package vnode

import (
	"github.com/samber/lo"
	"github.com/thanhnguyen2187/psx-vab/ds"
	"github.com/thanhnguyen2187/psx-vab/vab/lbytes"
	"github.com/thanhnguyen2187/psx-vab/vab/vheader"
)

type (
	Node struct {
		Name string
		// Format is a *vheader.Header, a *lbytes.Stream, or anything a caller
		// put there (the encoders reject it).
		Format any
	}
	Container struct {
		nodes *ds.LinkedHashMap[string, Node]
	}
)

const HeaderName = "header"

func NewContainer() *Container {
	return &Container{
		nodes: ds.NewLinkedHashMap[string, Node](),
	}
}

func NewBinary(name string, stream *lbytes.Stream) Node {
	return Node{Name: name, Format: stream}
}

func NewHeader(header *vheader.Header) Node {
	return Node{Name: HeaderName, Format: header}
}

func (r Node) IsHeader() bool {
	_, ok := r.Format.(*vheader.Header)
	return ok
}

func (r Node) IsBinary() bool {
	_, ok := r.Format.(*lbytes.Stream)
	return ok
}

func (r Node) Stream() *lbytes.Stream {
	stream, _ := r.Format.(*lbytes.Stream)
	return stream
}

// Add appends node, or replaces the node with the same name in place.
func (r *Container) Add(node Node) {
	r.nodes.Put(node.Name, node)
}

func (r *Container) Len() int {
	return r.nodes.Len()
}

func (r *Container) Children() []Node {
	return r.nodes.Values()
}

// Header returns the first header node's content, nil when there is none.
func (r *Container) Header() *vheader.Header {
	node, ok := lo.Find(r.Children(), Node.IsHeader)
	if !ok {
		return nil
	}
	return node.Format.(*vheader.Header)
}

func (r *Container) Binaries() []Node {
	return lo.Filter(
		r.Children(),
		func(node Node, _ int) bool {
			return node.IsBinary()
		},
	)
}
