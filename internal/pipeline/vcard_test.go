package pipeline

import (
	"strings"
	"testing"

	"github.com/zoomka/contact-intel/api/internal/entity"
)

func TestExportVCardLineOrder(t *testing.T) {
	record := &entity.ContactRecord{
		Name:    "Jane Doe",
		Role:    "CTO",
		Company: "Acme Corp",
		Email:   "jane@acme.com",
		Phone:   "+1-555-0100",
		Website: "https://acme.com",
		Notes:   "met at expo",
	}

	got := ExportVCard(record)
	want := strings.Join([]string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:Jane Doe",
		"TITLE:CTO",
		"ORG:Acme Corp",
		"EMAIL:jane@acme.com",
		"TEL:+1-555-0100",
		"URL:https://acme.com",
		"NOTE:met at expo",
		"END:VCARD",
	}, "\n")
	if got != want {
		t.Fatalf("unexpected card output:\n%s\nwant:\n%s", got, want)
	}
}

func TestExportVCardOmitsEmptyFields(t *testing.T) {
	record := &entity.ContactRecord{Name: "Jane Doe", Phone: "+1-555-0100"}
	got := ExportVCard(record)

	for _, forbidden := range []string{"TITLE:", "ORG:", "EMAIL:", "URL:", "NOTE:"} {
		if strings.Contains(got, forbidden) {
			t.Fatalf("expected %s omitted, got:\n%s", forbidden, got)
		}
	}
	if !strings.HasPrefix(got, "BEGIN:VCARD\nVERSION:3.0\nFN:Jane Doe") || !strings.HasSuffix(got, "END:VCARD") {
		t.Fatalf("missing sentinel lines:\n%s", got)
	}
}

func TestVCardRoundTrip(t *testing.T) {
	cases := []entity.ContactRecord{
		{Name: "Jane Doe", Role: "CTO", Company: "Acme Corp", Email: "jane@acme.com", Phone: "+1-555-0100", Website: "https://acme.com", Notes: "met at expo"},
		{Name: "Bo Chen", Company: "Dragon Trade"},
		{Name: "Solo", Phone: "+254700000000"},
	}

	for _, original := range cases {
		parsed := ParseVCard(ExportVCard(&original))
		if parsed.Name != original.Name || parsed.Company != original.Company || parsed.Role != original.Role {
			t.Fatalf("display fields not recovered: %+v vs %+v", parsed, original)
		}
		if parsed.Email != original.Email || parsed.Phone != original.Phone || parsed.Website != original.Website {
			t.Fatalf("channels not recovered: %+v vs %+v", parsed, original)
		}
		if parsed.Notes != original.Notes {
			t.Fatalf("notes not recovered: %q vs %q", parsed.Notes, original.Notes)
		}
	}
}

func TestParseVCardAccumulatesNotes(t *testing.T) {
	raw := strings.Join([]string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:Jane Doe",
		"NOTE:first line",
		"NOTE:second line",
		"END:VCARD",
	}, "\n")

	record := ParseVCard(raw)
	if record.Notes != "first line second line" {
		t.Fatalf("unexpected notes: %q", record.Notes)
	}
	if record.Category != CategoryVCard || !hasTag(record.Tags, "vcard") {
		t.Fatalf("unexpected category/tags: %q %v", record.Category, record.Tags)
	}
}
