package elevio

import (
	"fmt"

	"singlevator/src/config"
	"singlevator/src/types"
)

// SimulatedIO drives the elevator simulator.
type SimulatedIO struct {
	*conn
}

func DialSimulator(addr string) (*SimulatedIO, error) {
	c, err := dial(addr)
	if err != nil {
		return nil, err
	}
	return &SimulatedIO{conn: c}, nil
}

// Reset puts the simulator back in its initial state.
func (sim *SimulatedIO) Reset() {
	sim.write([4]byte{cmdReset, 0, 0, 0})
}

// HardwareIO drives the lab elevator through its hardware server.
// Floor and button arguments are checked before they reach the wire.
type HardwareIO struct {
	*conn
}

func DialHardware(addr string) (*HardwareIO, error) {
	c, err := dial(addr)
	if err != nil {
		return nil, err
	}
	return &HardwareIO{conn: c}, nil
}

func (hw *HardwareIO) GetButton(button types.ButtonType, floor int) bool {
	types.ButtonEvent{Floor: floor, Button: button}.MustBeValid()
	return hw.conn.GetButton(button, floor)
}

func (hw *HardwareIO) SetButtonLamp(button types.ButtonType, floor int, value bool) {
	types.ButtonEvent{Floor: floor, Button: button}.MustBeValid()
	hw.conn.SetButtonLamp(button, floor, value)
}

func (hw *HardwareIO) SetFloorIndicator(floor int) {
	if !types.ValidFloor(floor) {
		panic(fmt.Sprintf("floor indicator %d out of range [0, %d)", floor, config.NumFloors))
	}
	hw.conn.SetFloorIndicator(floor)
}
