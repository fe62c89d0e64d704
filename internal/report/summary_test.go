package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/congestionscan/internal/model"
)

// TestSummaryWriterWrite tests the markdown run summary rendering.
func TestSummaryWriterWrite(t *testing.T) {
	t.Parallel()

	t.Run("renders title and run properties", func(t *testing.T) {
		t.Parallel()

		summary := &model.RunSummary{
			Started: time.Date(2019, 4, 20, 10, 30, 0, 0, time.UTC),
			Months:  2,
			Pairs: []model.PairResult{
				{
					Near:   model.Network{ASN: "7018", Name: "AT&T"},
					Far:    model.Network{ASN: "16509", Name: "AMAZON-02"},
					Events: 3,
				},
			},
		}

		var buf bytes.Buffer
		if err := NewSummaryWriter(&buf).Write(summary); err != nil {
			t.Fatal(err)
		}
		got := buf.String()

		if !strings.Contains(got, "# Congestion Scan Summary") {
			t.Error("expected H1 title")
		}
		if !strings.Contains(got, "2019-04-20 10:30:00 UTC") {
			t.Error("expected run start time")
		}
		if !strings.Contains(got, "2 months (30-day windows)") {
			t.Error("expected lookback row")
		}
	})

	t.Run("groups pairs under the near network heading", func(t *testing.T) {
		t.Parallel()

		summary := &model.RunSummary{
			Started: time.Now(),
			Months:  1,
			Pairs: []model.PairResult{
				{
					Near:   model.Network{ASN: "7018", Name: "AT&T"},
					Far:    model.Network{ASN: "16509", Name: "AMAZON-02"},
					Events: 5,
				},
				{
					Near:   model.Network{ASN: "7018", Name: "AT&T"},
					Far:    model.Network{ASN: "174", Name: "COGENT"},
					Events: 0,
				},
				{
					Near:   model.Network{ASN: "7922", Name: "COMCAST"},
					Far:    model.Network{ASN: "16509", Name: "AMAZON-02"},
					Events: 0,
				},
			},
		}

		var buf bytes.Buffer
		if err := NewSummaryWriter(&buf).Write(summary); err != nil {
			t.Fatal(err)
		}
		got := buf.String()

		if !strings.Contains(got, "## AT&T (AS7018)") {
			t.Error("expected AT&T section heading")
		}
		if !strings.Contains(got, "## COMCAST (AS7922)") {
			t.Error("expected COMCAST section heading")
		}
		if strings.Index(got, "AS7018") > strings.Index(got, "AS7922") {
			t.Error("expected sections in processing order")
		}
	})

	t.Run("status column distinguishes outcomes", func(t *testing.T) {
		t.Parallel()

		summary := &model.RunSummary{
			Started: time.Now(),
			Months:  1,
			Pairs: []model.PairResult{
				{
					Near:   model.Network{ASN: "7018", Name: "AT&T"},
					Far:    model.Network{ASN: "16509", Name: "AMAZON-02"},
					Events: 2,
				},
				{
					Near: model.Network{ASN: "7018", Name: "AT&T"},
					Far:  model.Network{ASN: "174", Name: "COGENT"},
				},
				{
					Near: model.Network{ASN: "7018", Name: "AT&T"},
					Far:  model.Network{ASN: "8075", Name: "MICROSOFT"},
					Err:  errors.New("server error"),
				},
			},
		}

		var buf bytes.Buffer
		if err := NewSummaryWriter(&buf).Write(summary); err != nil {
			t.Fatal(err)
		}
		got := buf.String()

		if !strings.Contains(got, "congestion detected") {
			t.Error("expected detected status")
		}
		if !strings.Contains(got, "no congestion") {
			t.Error("expected clean status")
		}
		if !strings.Contains(got, "skipped: server error") {
			t.Error("expected skipped status with the failure reason")
		}
	})

	t.Run("total events sums all pairs", func(t *testing.T) {
		t.Parallel()

		summary := &model.RunSummary{
			Started: time.Now(),
			Months:  1,
			Pairs: []model.PairResult{
				{Near: model.Network{ASN: "7018"}, Far: model.Network{ASN: "16509"}, Events: 3},
				{Near: model.Network{ASN: "7018"}, Far: model.Network{ASN: "174"}, Events: 4},
			},
		}

		var buf bytes.Buffer
		if err := NewSummaryWriter(&buf).Write(summary); err != nil {
			t.Fatal(err)
		}

		var totalLine string
		for _, line := range strings.Split(buf.String(), "\n") {
			if strings.Contains(line, "Total events") {
				totalLine = line
				break
			}
		}
		if !strings.Contains(totalLine, "7") {
			t.Errorf("expected total of 7 events in the property table, got:\n%s", buf.String())
		}
	})
}
