// State types are defined in elev package together with the request functions that read them.
package elev

import (
	"log/slog"
	"strings"
	"time"

	"singlevator/src/config"
	"singlevator/src/types"
	"singlevator/src/utils"
)

// ElevState represents the state of the elevator.
type ElevState struct {
	Floor     int // -1 until the first floor sensor reading
	Dir       types.MotorDirection
	Requests  types.Requests
	Behaviour types.ElevBehaviour
	Config    StateConfig
}

// StateConfig is fixed at startup.
type StateConfig struct {
	ClearRequestVariant config.ClearRequestVariant
	DoorOpenDuration    time.Duration
}

func InitElevState(cfg config.Config) ElevState {
	return ElevState{
		Floor:     -1,
		Dir:       types.MD_Stop,
		Behaviour: types.Idle,
		Config: StateConfig{
			ClearRequestVariant: cfg.ClearRequestVariant,
			DoorOpenDuration:    cfg.DoorOpenDuration,
		},
	}
}

// LogValue renders the state compactly, one row of "^v#" marks per floor from the top.
func (elevator ElevState) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("floor", elevator.Floor),
		slog.String("dir", elevator.Dir.String()),
		slog.String("behaviour", elevator.Behaviour.String()),
		slog.String("requests", formatRequests(elevator.Requests)),
	)
}

func formatRequests(requests types.Requests) string {
	marks := [config.NumButtons]byte{'^', 'v', '#'}
	rows := make([]string, config.NumFloors)
	utils.ForEachRequest(requests, func(floor int, btn types.ButtonType, active bool) {
		if rows[floor] == "" {
			rows[floor] = "---"
		}
		if active {
			row := []byte(rows[floor])
			row[btn] = marks[btn]
			rows[floor] = string(row)
		}
	})
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return strings.Join(rows, "|")
}
