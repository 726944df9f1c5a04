package record_test

import (
	"testing"

	"github.com/loomworks/weft/record"
)

func TestNewCollectionSeedsMembers(t *testing.T) {
	col := record.NewCollection(newContactType(),
		record.Attrs{"id": "c1"},
		record.Attrs{"id": "c2"},
	)

	if col.Len() != 2 {
		t.Fatalf("expected 2 members, got %d", col.Len())
	}
	if got := col.At(0).Get("id"); got != "c1" {
		t.Errorf("expected first member id 'c1', got %v", got)
	}
}

func TestCollectionSetMergesByServerID(t *testing.T) {
	col := record.NewCollection(newContactType(),
		record.Attrs{"id": "c1", "email": "old@example.com"},
	)
	existing := col.At(0)

	col.Set([]record.Attrs{
		{"id": "c2", "email": "new@example.com"},
		{"id": "c1", "email": "updated@example.com"},
	})

	if col.Len() != 2 {
		t.Fatalf("expected 2 members, got %d", col.Len())
	}
	// Input order wins; the matched member keeps its identity.
	if col.At(1) != existing {
		t.Error("expected the member matched by id to keep its identity")
	}
	if got := col.At(1).Get("email"); got != "updated@example.com" {
		t.Errorf("expected merged email, got %v", got)
	}
}

func TestCollectionSetRemovesAbsentMembers(t *testing.T) {
	col := record.NewCollection(newContactType(),
		record.Attrs{"id": "c1"},
		record.Attrs{"id": "c2"},
	)

	col.Set([]record.Attrs{{"id": "c2"}})

	if col.Len() != 1 {
		t.Fatalf("expected 1 member, got %d", col.Len())
	}
	if got := col.At(0).Get("id"); got != "c2" {
		t.Errorf("expected surviving member 'c2', got %v", got)
	}
}

func TestCollectionByClientID(t *testing.T) {
	col := record.NewCollection(newContactType(), record.Attrs{"id": "c1"})
	member := col.At(0)

	got, ok := col.ByClientID(member.ClientID())
	if !ok || got != member {
		t.Error("expected lookup by client identifier to find the member")
	}
	if _, ok := col.ByClientID("cid-unknown"); ok {
		t.Error("expected lookup of an unknown identifier to fail")
	}
}

func TestCollectionAddRemove(t *testing.T) {
	col := record.NewCollection(newContactType())
	m := record.New(newContactType(), record.Attrs{"id": "c1"})

	col.Add(m)
	if col.Len() != 1 {
		t.Fatalf("expected 1 member after add, got %d", col.Len())
	}

	if !col.Remove(m) {
		t.Error("expected removal of a member to succeed")
	}
	if col.Remove(m) {
		t.Error("expected removal of a non-member to fail")
	}
	if col.Len() != 0 {
		t.Errorf("expected empty collection, got %d members", col.Len())
	}
}

func TestCollectionToJSON(t *testing.T) {
	col := record.NewCollection(newContactType(), record.Attrs{"id": "c1", "email": "a@example.com"})

	out := col.ToJSON()

	if len(out) != 1 {
		t.Fatalf("expected 1 expansion, got %d", len(out))
	}
	if out[0]["email"] != "a@example.com" {
		t.Errorf("expected member email in expansion, got %v", out[0])
	}
	if out[0][record.ClientIDKey] != col.At(0).ClientID() {
		t.Error("expected the member expansion to carry its client identifier")
	}
}

func TestCollectionRecordsReturnsCopy(t *testing.T) {
	col := record.NewCollection(newContactType(), record.Attrs{"id": "c1"})

	records := col.Records()
	records[0] = nil

	if col.At(0) == nil {
		t.Error("expected mutating the returned slice to leave the collection intact")
	}
}
