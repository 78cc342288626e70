package dashboard

import (
	"testing"
	"time"

	"github.com/zachbowman/brandboard-backend/pkg/db/models"
	pkgerrors "github.com/zachbowman/brandboard-backend/pkg/errors"
)

func TestPanelUnknownKey(t *testing.T) {
	vm := fixedComposer(time.Now()).Compose(&Snapshot{})
	_, err := Panel(vm, "weather")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for unknown panel, got %v", err)
	}
}

func TestPanelEmptyMessageOnlyWhenEmpty(t *testing.T) {
	c := fixedComposer(time.Now())

	empty := c.Compose(&Snapshot{})
	panel, err := Panel(empty, "ad-campaigns")
	if err != nil {
		t.Fatalf("panel: %v", err)
	}
	if panel.EmptyMessage == "" {
		t.Fatal("empty campaign panel must carry its empty message")
	}

	populated := c.Compose(&Snapshot{
		AdCampaigns: []models.AdCampaign{{ID: 1, Name: "Summer Launch", CTR: 2.0, ROAS: 3.0}},
	})
	panel, err = Panel(populated, "ad-campaigns")
	if err != nil {
		t.Fatalf("panel: %v", err)
	}
	if panel.EmptyMessage != "" {
		t.Fatalf("populated panel must not carry an empty message, got %q", panel.EmptyMessage)
	}
}

func TestPanelRegistryCoversEveryKey(t *testing.T) {
	vm := fixedComposer(time.Now()).Compose(&Snapshot{})
	for _, key := range PanelKeys() {
		panel, err := Panel(vm, key)
		if err != nil {
			t.Fatalf("panel %q: %v", key, err)
		}
		if panel.Title == "" {
			t.Fatalf("panel %q has no title", key)
		}
	}
}

func TestPanelProductMarketFitAvailability(t *testing.T) {
	c := fixedComposer(time.Now())

	vm := c.Compose(&Snapshot{ProductMarketFit: &models.ProductMarketFit{ID: 1, BrandID: 1, PMFScore: 72}})
	panel, err := Panel(vm, "product-market-fit")
	if err != nil {
		t.Fatalf("panel: %v", err)
	}
	if panel.EmptyMessage != "" {
		t.Fatal("measured brand must not show the empty message")
	}

	vm = c.Compose(&Snapshot{})
	panel, err = Panel(vm, "product-market-fit")
	if err != nil {
		t.Fatalf("panel: %v", err)
	}
	if panel.EmptyMessage == "" {
		t.Fatal("unmeasured brand must show the empty message")
	}
}
