package executor

import (
	"time"

	"singlevator/src/config"
	"singlevator/src/types"
)

// fakeOutput records every command sent to the device.
type fakeOutput struct {
	motor     []types.MotorDirection
	door      []bool
	indicator []int
	lamps     [config.NumFloors][config.NumButtons]bool
	lampCalls int
	stopLamp  bool
}

func (o *fakeOutput) SetMotorDirection(dir types.MotorDirection) { o.motor = append(o.motor, dir) }
func (o *fakeOutput) SetDoorOpenLamp(value bool)                 { o.door = append(o.door, value) }
func (o *fakeOutput) SetFloorIndicator(floor int)                { o.indicator = append(o.indicator, floor) }
func (o *fakeOutput) SetStopLamp(value bool)                     { o.stopLamp = value }

func (o *fakeOutput) SetButtonLamp(button types.ButtonType, floor int, value bool) {
	o.lamps[floor][button] = value
	o.lampCalls++
}

func (o *fakeOutput) lastMotor() (types.MotorDirection, bool) {
	if len(o.motor) == 0 {
		return types.MD_Stop, false
	}
	return o.motor[len(o.motor)-1], true
}

func (o *fakeOutput) doorLit() bool {
	return len(o.door) > 0 && o.door[len(o.door)-1]
}

// fakeTimer counts starts and stops instead of measuring time.
type fakeTimer struct {
	starts   int
	stops    int
	duration time.Duration
	active   bool
	expired  bool
}

func (t *fakeTimer) Start(duration time.Duration) {
	t.starts++
	t.duration = duration
	t.active = true
	t.expired = false
}

func (t *fakeTimer) Stop() {
	t.stops++
	t.active = false
}

func (t *fakeTimer) TimedOut() bool {
	return t.active && t.expired
}

// fakeInput is a device whose sensors the test sets directly.
type fakeInput struct {
	buttons     [config.NumFloors][config.NumButtons]bool
	floor       int
	stop        bool
	obstruction bool
}

func (in *fakeInput) GetButton(button types.ButtonType, floor int) bool { return in.buttons[floor][button] }
func (in *fakeInput) GetFloor() int                                      { return in.floor }
func (in *fakeInput) GetStop() bool                                      { return in.stop }
func (in *fakeInput) GetObstruction() bool                               { return in.obstruction }
