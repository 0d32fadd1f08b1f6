package fstree

import (
	"errors"
	"testing"
)

// recorder collects the order in which nodes are visited.
type recorder struct {
	visits []string
}

func (r *recorder) VisitFile(f *File) error {
	r.visits = append(r.visits, "file:"+f.Path())
	return nil
}

func (r *recorder) VisitDirectory(d *Directory) error {
	r.visits = append(r.visits, "dir:"+d.Path())
	for _, child := range d.Children() {
		if err := child.Accept(r); err != nil {
			return err
		}
	}
	return nil
}

func TestNewFile(t *testing.T) {
	f, err := NewFile("/tmp/a/hello.txt", 11)
	if err != nil {
		t.Fatalf("NewFile() error = %v", err)
	}
	if f.Path() != "/tmp/a/hello.txt" {
		t.Errorf("Path() = %q", f.Path())
	}
	if f.Size() != 11 {
		t.Errorf("Size() = %d, want 11", f.Size())
	}
	if f.Name() != "hello.txt" {
		t.Errorf("Name() = %q, want hello.txt", f.Name())
	}
}

func TestNewNode_EmptyPath(t *testing.T) {
	if _, err := NewFile("", 1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewFile(\"\") error = %v, want %v", err, ErrInvalidArgument)
	}
	if _, err := NewDirectory(""); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewDirectory(\"\") error = %v, want %v", err, ErrInvalidArgument)
	}
}

func TestDirectory_AddChild(t *testing.T) {
	root, _ := NewDirectory("root")
	sub, _ := NewDirectory("root/sub")
	a, _ := NewFile("root/a", 3)
	b, _ := NewFile("root/sub/b", 4)
	c, _ := NewFile("root/sub/c", 0)

	if root.Size() != 0 || len(root.Children()) != 0 {
		t.Fatalf("new directory should be empty, got size %d and %d children", root.Size(), len(root.Children()))
	}

	for _, child := range []Node{b, c} {
		if err := sub.AddChild(child); err != nil {
			t.Fatal(err)
		}
	}
	for _, child := range []Node{a, sub} {
		if err := root.AddChild(child); err != nil {
			t.Fatal(err)
		}
	}

	if sub.Size() != 4 {
		t.Errorf("sub.Size() = %d, want 4", sub.Size())
	}
	if root.Size() != 7 {
		t.Errorf("root.Size() = %d, want 7", root.Size())
	}
	children := root.Children()
	if len(children) != 2 || children[0] != Node(a) || children[1] != Node(sub) {
		t.Errorf("Children() = %v, want [a sub] in insertion order", children)
	}

	if err := root.AddChild(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("AddChild(nil) error = %v, want %v", err, ErrInvalidArgument)
	}
	if root.Size() != 7 {
		t.Errorf("failed AddChild changed size to %d", root.Size())
	}
}

func TestAccept_Dispatch(t *testing.T) {
	root, _ := NewDirectory("root")
	a, _ := NewFile("root/a", 1)
	sub, _ := NewDirectory("root/sub")
	b, _ := NewFile("root/sub/b", 2)
	sub.AddChild(b)
	root.AddChild(a)
	root.AddChild(sub)

	r := &recorder{}
	if err := root.Accept(r); err != nil {
		t.Fatal(err)
	}
	want := []string{"dir:root", "file:root/a", "dir:root/sub", "file:root/sub/b"}
	if len(r.visits) != len(want) {
		t.Fatalf("visits = %v, want %v", r.visits, want)
	}
	for i := range want {
		if r.visits[i] != want[i] {
			t.Errorf("visit %d = %q, want %q", i, r.visits[i], want[i])
		}
	}
}

func TestAccept_NilVisitor(t *testing.T) {
	f, _ := NewFile("a", 1)
	d, _ := NewDirectory("d")
	if err := f.Accept(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("File.Accept(nil) error = %v", err)
	}
	if err := d.Accept(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Directory.Accept(nil) error = %v", err)
	}
}
