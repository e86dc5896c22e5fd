package content

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"
)

func unit(title, date string) []byte {
	return []byte("---\ntitle: " + title + "\ndescription: About " + title + "\ndate: " + date + "\n---\n\nBody for " + title + ".\n")
}

func testStore(files map[string][]byte) *FSStore {
	fsys := fstest.MapFS{}
	for name, data := range files {
		fsys[name] = &fstest.MapFile{Data: data}
	}
	return NewFSStore(fsys, StoreConfig{})
}

func TestRepository_LoadAllSortsByDateDescending(t *testing.T) {
	store := testStore(map[string][]byte{
		"january.md":  unit("January", "2024-01-01T00:00:00Z"),
		"march.md":    unit("March", "2024-03-01T00:00:00Z"),
		"february.md": unit("February", "2024-02-01T00:00:00Z"),
	})

	repo := NewRepository(store, nil, nil)
	records, err := repo.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	got := []string{records[0].Slug, records[1].Slug, records[2].Slug}
	want := []string{"march", "february", "january"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}

func TestRepository_LoadAllTieBreaksByFilename(t *testing.T) {
	store := testStore(map[string][]byte{
		"zebra.md":  unit("Zebra", "2024-05-01T00:00:00Z"),
		"apple.md":  unit("Apple", "2024-05-01T00:00:00Z"),
		"mango.md":  unit("Mango", "2024-05-01T00:00:00Z"),
		"newest.md": unit("Newest", "2024-06-01T00:00:00Z"),
	})

	repo := NewRepository(store, nil, nil)
	records, err := repo.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	want := []string{"newest", "apple", "mango", "zebra"}
	for i, w := range want {
		if records[i].Slug != w {
			t.Fatalf("tie-break order mismatch at %d: got %q, want %q", i, records[i].Slug, w)
		}
	}
}

func TestRepository_LoadAllAbortsOnBadUnit(t *testing.T) {
	store := testStore(map[string][]byte{
		"good.md": unit("Good", "2024-01-01T00:00:00Z"),
		"bad.md":  []byte("---\ntitle: Bad\ndate: 2024-01-02T00:00:00Z\n---\n\nNo description.\n"),
	})

	repo := NewRepository(store, nil, nil)
	records, err := repo.LoadAll(context.Background())
	if err == nil {
		t.Fatalf("expected load to abort on the bad unit")
	}
	if records != nil {
		t.Fatalf("no partial collection may be returned, got %d records", len(records))
	}
	if !errors.Is(err, ErrMissingMetadata) {
		t.Fatalf("expected ErrMissingMetadata, got %v", err)
	}
}

func TestRepository_LoadOne(t *testing.T) {
	store := testStore(map[string][]byte{
		"hello.md": unit("Hello", "2024-01-01T00:00:00Z"),
	})

	repo := NewRepository(store, nil, nil)

	rec, err := repo.LoadOne(context.Background(), "hello")
	if err != nil {
		t.Fatalf("LoadOne: %v", err)
	}
	if rec.Title != "Hello" {
		t.Fatalf("Title mismatch: %q", rec.Title)
	}

	_, err = repo.LoadOne(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Slug != "missing" {
		t.Fatalf("not-found error should name the slug: %v", err)
	}
}

func TestRepository_LoadAllRereadsStore(t *testing.T) {
	fsys := fstest.MapFS{
		"first.md": &fstest.MapFile{Data: unit("First", "2024-01-01T00:00:00Z")},
	}
	repo := NewRepository(NewFSStore(fsys, StoreConfig{}), nil, nil)

	records, err := repo.LoadAll(context.Background())
	if err != nil || len(records) != 1 {
		t.Fatalf("initial load: %v (%d records)", err, len(records))
	}

	fsys["second.md"] = &fstest.MapFile{Data: unit("Second", "2024-02-01T00:00:00Z")}

	records, err = repo.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(records) != 2 || records[0].Slug != "second" {
		t.Fatalf("expected fresh collection per call, got %d records", len(records))
	}
}

func TestFSStore_NonRecursiveSkipsSubdirectories(t *testing.T) {
	fsys := fstest.MapFS{
		"top.md":         &fstest.MapFile{Data: unit("Top", "2024-01-01T00:00:00Z")},
		"drafts/wip.md":  &fstest.MapFile{Data: unit("WIP", "2024-01-02T00:00:00Z")},
		"notes/memo.txt": &fstest.MapFile{Data: []byte("not content")},
	}

	store := NewFSStore(fsys, StoreConfig{})
	files, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(files) != 1 || files[0].Slug != "top" {
		t.Fatalf("expected only the top-level unit, got %#v", files)
	}

	store = NewFSStore(fsys, StoreConfig{Recursive: true})
	files, err = store.List(context.Background())
	if err != nil {
		t.Fatalf("List recursive: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected both markdown units, got %d", len(files))
	}
}
