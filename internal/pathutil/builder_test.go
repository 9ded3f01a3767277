package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathBuilder(t *testing.T) {
	tests := []struct {
		name  string
		build func(p *PathBuilder)
		want  string
	}{
		{
			name:  "empty",
			build: func(p *PathBuilder) {},
			want:  "",
		},
		{
			name: "dotted segments",
			build: func(p *PathBuilder) {
				p.Push("components")
				p.Push("schemas")
				p.Push("Status")
			},
			want: "components.schemas.Status",
		},
		{
			name: "keys and indexes",
			build: func(p *PathBuilder) {
				p.Push("paths")
				p.Push("/pets")
				p.Push("get")
				p.Push("parameters")
				p.PushKey("status")
				p.Push("schema")
				p.Push("items")
				p.PushIndex(2)
			},
			want: "paths./pets.get.parameters[status].schema.items[2]",
		},
		{
			name: "push and pop",
			build: func(p *PathBuilder) {
				p.Push("a")
				p.Push("b")
				p.PushIndex(0)
				p.Pop()
				p.Pop()
				p.Push("c")
			},
			want: "a.c",
		},
		{
			name: "pop on empty",
			build: func(p *PathBuilder) {
				p.Pop()
				p.Push("a")
			},
			want: "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p PathBuilder
			tt.build(&p)
			assert.Equal(t, tt.want, p.String())
			assert.Equal(t, len(tt.want), p.length)
		})
	}
}

func TestPool(t *testing.T) {
	p := Get()
	p.Push("leftover")
	Put(p)

	q := Get()
	assert.Equal(t, "", q.String())
	Put(q)
	Put(nil)
}
