package tui

import (
	"context"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/registry"
	"github.com/vovakirdan/tui-life/internal/sim"
)

// FrontendID is the registry ID of the Bubble Tea frontend.
const FrontendID = "tea"

func init() {
	registry.Register(FrontendID, func() registry.Frontend { return Frontend{} })
}

// Frontend adapts Run to registry.Frontend.
type Frontend struct{}

func (Frontend) ID() string    { return FrontendID }
func (Frontend) Title() string { return "Bubble Tea (alt screen, status bar)" }

func (Frontend) Run(ctx context.Context, s *sim.Simulation, cfg core.RuntimeConfig) error {
	return Run(ctx, s, cfg)
}
