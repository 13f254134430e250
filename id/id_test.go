package id_test

import (
	"strings"
	"testing"

	"github.com/xraph/veto/id"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		newFn  func() id.ID
		prefix string
	}{
		{"SnapshotID", id.NewSnapshotID, "snap_"},
		{"AuditID", id.NewAuditID, "audit_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.newFn().String()
			if !strings.HasPrefix(got, tt.prefix) {
				t.Errorf("expected prefix %q, got %q", tt.prefix, got)
			}
		})
	}
}

func TestNew(t *testing.T) {
	i := id.New(id.PrefixSnapshot)
	if i.IsNil() {
		t.Fatal("expected non-nil ID")
	}
	if i.Prefix() != id.PrefixSnapshot {
		t.Errorf("expected prefix %q, got %q", id.PrefixSnapshot, i.Prefix())
	}
}

func TestParseRoundTrip(t *testing.T) {
	orig := id.NewAuditID()
	parsed, err := id.ParseAuditID(orig.String())
	if err != nil {
		t.Fatal(err)
	}
	if parsed != orig {
		t.Fatalf("round trip mismatch: %s != %s", parsed, orig)
	}
}

func TestParseWithWrongPrefix(t *testing.T) {
	snap := id.NewSnapshotID()
	if _, err := id.ParseAuditID(snap.String()); err == nil {
		t.Fatal("expected error parsing snapshot ID as audit ID")
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := id.Parse(""); err == nil {
		t.Fatal("expected error for empty string")
	}
}

func TestNilID(t *testing.T) {
	var i id.ID
	if !i.IsNil() {
		t.Fatal("zero value should be nil")
	}
	if i.String() != "" {
		t.Fatalf("nil ID should render empty, got %q", i.String())
	}
}

func TestTextMarshalRoundTrip(t *testing.T) {
	orig := id.NewSnapshotID()
	data, err := orig.MarshalText()
	if err != nil {
		t.Fatal(err)
	}

	var parsed id.ID
	if err := parsed.UnmarshalText(data); err != nil {
		t.Fatal(err)
	}
	if parsed != orig {
		t.Fatalf("round trip mismatch: %s != %s", parsed, orig)
	}
}

func TestScan(t *testing.T) {
	orig := id.NewAuditID()

	var scanned id.ID
	if err := scanned.Scan(orig.String()); err != nil {
		t.Fatal(err)
	}
	if scanned != orig {
		t.Fatalf("scan mismatch: %s != %s", scanned, orig)
	}

	var fromNil id.ID
	if err := fromNil.Scan(nil); err != nil {
		t.Fatal(err)
	}
	if !fromNil.IsNil() {
		t.Fatal("scanning nil should yield the Nil ID")
	}
}
