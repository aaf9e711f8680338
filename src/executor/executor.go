package executor

import (
	"context"
	"log/slog"
	"time"

	"singlevator/lib/driver-go/elevio"
	"singlevator/src/config"
	"singlevator/src/types"
)

// EventHandler receives the edge-triggered events detected by the Poller.
type EventHandler interface {
	OnInitBetweenFloors()
	OnRequestButtonPress(btnFloor int, btnType types.ButtonType)
	OnFloorArrival(newFloor int)
	OnDoorTimeout()
}

// ExpiringTimer is the part of the door timer the Poller checks every cycle.
type ExpiringTimer interface {
	TimedOut() bool
	Stop()
}

// Poller samples the device inputs and turns changes into events.
type Poller struct {
	in          elevio.Input
	handler     EventHandler
	doorTimer   ExpiringTimer
	prevButtons [config.NumFloors][config.NumButtons]bool
	prevFloor   int
}

func NewPoller(in elevio.Input, handler EventHandler, doorTimer ExpiringTimer) *Poller {
	return &Poller{
		in:        in,
		handler:   handler,
		doorTimer: doorTimer,
		prevFloor: -1,
	}
}

// InitElevPos is called on startup.
//   - If between floors, moves elevator down
//   - If on floor, reports it as an arrival so the floor is known before any button press
func (p *Poller) InitElevPos() {
	floor := p.in.GetFloor()
	if floor == -1 {
		p.handler.OnInitBetweenFloors()
	} else {
		slog.Info("Starting at floor", "floor", floor)
		p.handler.OnFloorArrival(floor)
	}
	p.prevFloor = floor
}

// Poll runs one cycle: button presses, then floor sensor, then door timer.
func (p *Poller) Poll() {
	for floor := range config.NumFloors {
		for btn := range config.NumButtons {
			v := p.in.GetButton(types.ButtonType(btn), floor)
			if v && v != p.prevButtons[floor][btn] {
				p.handler.OnRequestButtonPress(floor, types.ButtonType(btn))
			}
			p.prevButtons[floor][btn] = v
		}
	}

	floor := p.in.GetFloor()
	if floor != -1 && floor != p.prevFloor {
		p.handler.OnFloorArrival(floor)
	}
	p.prevFloor = floor

	if p.doorTimer.TimedOut() {
		p.doorTimer.Stop()
		p.handler.OnDoorTimeout()
	}
}

// Run polls at a fixed rate until ctx is cancelled.
func (p *Poller) Run(ctx context.Context, pollRate time.Duration) error {
	ticker := time.NewTicker(pollRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.Poll()
		}
	}
}
