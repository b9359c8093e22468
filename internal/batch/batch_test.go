package batch

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gmfurtado/pixcards/internal/pix"
	"github.com/gmfurtado/pixcards/internal/template"
)

func baseData() pix.CardData {
	return pix.CardData{
		Name: "JOHN DOE",
		Key:  "03493231000172",
		City: "SAO PAULO",
		TxID: "ABC123",
	}
}

func TestProcess(t *testing.T) {
	tpl := template.Default()
	records := []Record{
		{Line: 1, Amount: "10.00"},
		{Line: 2, Amount: "R$ 25,50"},
		{Line: 3, Amount: "", Name: "MARIA SOUZA"},
		{Line: 4, Amount: "5.00", Name: "ab"}, // name override too short
	}

	report := Process(tpl, baseData(), records, zerolog.Nop())

	if report.RunID == "" {
		t.Error("report has no run id")
	}
	if report.TemplateID != tpl.ID {
		t.Errorf("TemplateID = %q, want %q", report.TemplateID, tpl.ID)
	}
	if report.Generated != 3 || report.Failed != 1 {
		t.Fatalf("Generated/Failed = %d/%d, want 3/1 (results: %+v)", report.Generated, report.Failed, report.Results)
	}
	if len(report.Results) != len(records) {
		t.Fatalf("got %d results, want %d", len(report.Results), len(records))
	}

	first := report.Results[0]
	if first.Payload == "" || len(first.Errors) != 0 {
		t.Errorf("result 1 = %+v, want a payload", first)
	}
	if !strings.Contains(first.Payload, "540510.00") {
		t.Errorf("result 1 payload missing amount field: %s", first.Payload)
	}

	if got := report.Results[1].Amount; got != "25.50" {
		t.Errorf("result 2 amount = %q, want normalized %q", got, "25.50")
	}

	third := report.Results[2]
	if third.Payload == "" {
		t.Errorf("result 3 = %+v, want an open-value payload", third)
	}
	if strings.Contains(third.Payload, "5405") {
		t.Errorf("result 3 payload should carry no amount: %s", third.Payload)
	}

	fourth := report.Results[3]
	if fourth.Payload != "" || fourth.Errors["name"] == "" {
		t.Errorf("result 4 = %+v, want a name error and no payload", fourth)
	}
}

func TestProcess_Empty(t *testing.T) {
	report := Process(template.Default(), baseData(), nil, zerolog.Nop())
	if report.Generated != 0 || report.Failed != 0 || len(report.Results) != 0 {
		t.Errorf("empty run report = %+v", report)
	}
}

func TestReport_CSV(t *testing.T) {
	tpl := template.Default()
	records := []Record{
		{Line: 1, Amount: "10.00"},
		{Line: 2, Amount: "5.00", Name: "ab"},
	}
	report := Process(tpl, baseData(), records, zerolog.Nop())

	out := string(report.CSV())
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("CSV has %d lines, want header plus 2 rows:\n%s", len(lines), out)
	}
	if lines[0] != "linha,txid,valor,status,detalhe" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1,ABC123,10.00,OK,") {
		t.Errorf("row 1 = %q", lines[1])
	}
	if !strings.Contains(lines[2], "ERRO") || !strings.Contains(lines[2], "name: ") {
		t.Errorf("row 2 = %q", lines[2])
	}
}
