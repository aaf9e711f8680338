package executor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"singlevator/src/config"
	"singlevator/src/types"
)

func newTestController(cv config.ClearRequestVariant) (*Controller, *fakeOutput, *fakeTimer) {
	cfg := config.Default()
	cfg.ClearRequestVariant = cv
	cfg.DoorOpenDuration = 2 * time.Second
	out := &fakeOutput{}
	doorTimer := &fakeTimer{}
	return NewController(cfg, out, doorTimer), out, doorTimer
}

// idleAt puts the controller at floor with the door closed, as after a startup on a floor.
func idleAt(t *testing.T, ctrl *Controller, floor int) {
	t.Helper()
	ctrl.OnFloorArrival(floor)
	state := ctrl.State()
	require.Equal(t, floor, state.Floor)
	require.Equal(t, types.Idle, state.Behaviour)
}

// doorOpenAt serves a cab call at floor so the door is open there.
func doorOpenAt(t *testing.T, ctrl *Controller, floor int) {
	t.Helper()
	idleAt(t, ctrl, floor)
	ctrl.OnRequestButtonPress(floor, types.BT_Cab)
	require.Equal(t, types.DoorOpen, ctrl.State().Behaviour)
}

func TestInitialState(t *testing.T) {
	ctrl, out, _ := newTestController(config.CV_All)
	state := ctrl.State()
	assert.Equal(t, -1, state.Floor)
	assert.Equal(t, types.MD_Stop, state.Dir)
	assert.Equal(t, types.Idle, state.Behaviour)
	assert.Equal(t, types.Requests{}, state.Requests)
	assert.Empty(t, out.motor)
}

func TestOnInitBetweenFloors(t *testing.T) {
	ctrl, out, _ := newTestController(config.CV_All)
	ctrl.OnInitBetweenFloors()

	state := ctrl.State()
	assert.Equal(t, types.MD_Down, state.Dir)
	assert.Equal(t, types.Moving, state.Behaviour)
	assert.Equal(t, []types.MotorDirection{types.MD_Down}, out.motor)

	// First floor reached while no requests: stop there with the door open.
	ctrl.OnFloorArrival(1)
	state = ctrl.State()
	assert.Equal(t, types.DoorOpen, state.Behaviour)
	assert.Equal(t, []types.MotorDirection{types.MD_Down, types.MD_Stop}, out.motor)
}

func TestTripToCabCall(t *testing.T) {
	ctrl, out, doorTimer := newTestController(config.CV_All)
	idleAt(t, ctrl, 0)

	ctrl.OnRequestButtonPress(2, types.BT_Cab)
	state := ctrl.State()
	assert.Equal(t, types.MD_Up, state.Dir)
	assert.Equal(t, types.Moving, state.Behaviour)
	assert.Equal(t, []types.MotorDirection{types.MD_Up}, out.motor)
	assert.Empty(t, out.door)
	assert.True(t, out.lamps[2][types.BT_Cab])

	ctrl.OnFloorArrival(1)
	assert.Equal(t, types.Moving, ctrl.State().Behaviour)
	assert.Equal(t, []types.MotorDirection{types.MD_Up}, out.motor, "passes floor 1")
	assert.Zero(t, doorTimer.starts)

	ctrl.OnFloorArrival(2)
	state = ctrl.State()
	assert.Equal(t, types.DoorOpen, state.Behaviour)
	assert.Equal(t, []types.MotorDirection{types.MD_Up, types.MD_Stop}, out.motor)
	assert.True(t, out.doorLit())
	assert.Equal(t, 1, doorTimer.starts)
	assert.Equal(t, 2*time.Second, doorTimer.duration)
	assert.False(t, state.Requests[2][types.BT_Cab])
	assert.False(t, out.lamps[2][types.BT_Cab])
	assert.Equal(t, []int{0, 1, 2}, out.indicator)
}

func TestCabCallAtCurrentFloorOpensDoorWithoutMoving(t *testing.T) {
	for _, cv := range []config.ClearRequestVariant{config.CV_All, config.CV_InDirn} {
		t.Run(cv.String(), func(t *testing.T) {
			ctrl, out, doorTimer := newTestController(cv)
			idleAt(t, ctrl, 1)

			ctrl.OnRequestButtonPress(1, types.BT_Cab)
			state := ctrl.State()
			assert.Equal(t, types.DoorOpen, state.Behaviour)
			assert.Equal(t, types.MD_Stop, state.Dir)
			assert.Empty(t, out.motor)
			assert.True(t, out.doorLit())
			assert.Equal(t, 1, doorTimer.starts)
			assert.Equal(t, types.Requests{}, state.Requests)
			assert.False(t, out.lamps[1][types.BT_Cab])
		})
	}
}

func TestPressAtOpenDoorRestartsTimer(t *testing.T) {
	for _, cv := range []config.ClearRequestVariant{config.CV_All, config.CV_InDirn} {
		t.Run(cv.String(), func(t *testing.T) {
			ctrl, out, doorTimer := newTestController(cv)
			doorOpenAt(t, ctrl, 3)
			starts := doorTimer.starts

			ctrl.OnRequestButtonPress(3, types.BT_Cab)
			assert.Equal(t, starts+1, doorTimer.starts)
			state := ctrl.State()
			assert.Equal(t, types.DoorOpen, state.Behaviour)
			assert.Equal(t, types.Requests{}, state.Requests)
			assert.False(t, out.lamps[3][types.BT_Cab])
		})
	}
}

func TestPressElsewhereWhileDoorOpenIsRecorded(t *testing.T) {
	ctrl, out, doorTimer := newTestController(config.CV_All)
	doorOpenAt(t, ctrl, 1)
	starts := doorTimer.starts

	ctrl.OnRequestButtonPress(3, types.BT_HallDown)
	state := ctrl.State()
	assert.True(t, state.Requests[3][types.BT_HallDown])
	assert.True(t, out.lamps[3][types.BT_HallDown])
	assert.Equal(t, starts, doorTimer.starts)
	assert.Equal(t, types.DoorOpen, state.Behaviour)
}

func TestPressWhileMovingIsRecorded(t *testing.T) {
	ctrl, out, _ := newTestController(config.CV_All)
	idleAt(t, ctrl, 0)
	ctrl.OnRequestButtonPress(3, types.BT_Cab)

	ctrl.OnRequestButtonPress(0, types.BT_HallUp)
	state := ctrl.State()
	assert.True(t, state.Requests[0][types.BT_HallUp])
	assert.True(t, out.lamps[0][types.BT_HallUp])
	assert.Equal(t, types.Moving, state.Behaviour)
	assert.Equal(t, []types.MotorDirection{types.MD_Up}, out.motor)
}

func TestLightsMirrorRequests(t *testing.T) {
	ctrl, out, _ := newTestController(config.CV_All)
	idleAt(t, ctrl, 0)
	ctrl.OnRequestButtonPress(3, types.BT_Cab)
	ctrl.OnRequestButtonPress(2, types.BT_HallUp)

	assert.Equal(t, 2*config.NumFloors*config.NumButtons, out.lampCalls)
	assert.Equal(t, [config.NumFloors][config.NumButtons]bool(ctrl.State().Requests), out.lamps)
}

func TestDoorTimeoutMovesToNextRequest(t *testing.T) {
	ctrl, out, doorTimer := newTestController(config.CV_All)
	doorOpenAt(t, ctrl, 1)
	ctrl.OnRequestButtonPress(3, types.BT_Cab)

	ctrl.OnDoorTimeout()
	state := ctrl.State()
	assert.Equal(t, types.Moving, state.Behaviour)
	assert.Equal(t, types.MD_Up, state.Dir)
	assert.False(t, out.doorLit())
	motor, ok := out.lastMotor()
	require.True(t, ok)
	assert.Equal(t, types.MD_Up, motor)
	assert.False(t, doorTimer.active)
}

func TestDoorTimeoutWithoutRequestsIdles(t *testing.T) {
	ctrl, out, _ := newTestController(config.CV_All)
	doorOpenAt(t, ctrl, 2)

	ctrl.OnDoorTimeout()
	state := ctrl.State()
	assert.Equal(t, types.Idle, state.Behaviour)
	assert.Equal(t, types.MD_Stop, state.Dir)
	assert.False(t, out.doorLit())
	assert.Equal(t, []types.MotorDirection{types.MD_Stop}, out.motor)
}

func TestDoorTimeoutKeepsDoorOpenForRequestHere(t *testing.T) {
	ctrl, out, doorTimer := newTestController(config.CV_InDirn)
	idleAt(t, ctrl, 0)
	ctrl.OnRequestButtonPress(1, types.BT_Cab)
	ctrl.OnFloorArrival(1)
	require.Equal(t, types.DoorOpen, ctrl.State().Behaviour)
	require.Equal(t, types.MD_Up, ctrl.State().Dir)

	// Hall down is not served by a door opened on the way up.
	ctrl.OnRequestButtonPress(1, types.BT_HallDown)
	require.True(t, ctrl.State().Requests[1][types.BT_HallDown])
	starts := doorTimer.starts

	ctrl.OnDoorTimeout()
	state := ctrl.State()
	assert.Equal(t, types.DoorOpen, state.Behaviour)
	assert.Equal(t, types.MD_Down, state.Dir)
	assert.False(t, state.Requests[1][types.BT_HallDown])
	assert.False(t, out.lamps[1][types.BT_HallDown])
	assert.Equal(t, starts+1, doorTimer.starts)
	assert.True(t, out.doorLit())
}

func TestDoorTimeoutIgnoredUnlessDoorOpen(t *testing.T) {
	ctrl, out, doorTimer := newTestController(config.CV_All)
	idleAt(t, ctrl, 0)
	ctrl.OnRequestButtonPress(2, types.BT_Cab)
	before := ctrl.State()

	ctrl.OnDoorTimeout()
	assert.Equal(t, before, ctrl.State())
	assert.Equal(t, []types.MotorDirection{types.MD_Up}, out.motor)
	assert.Zero(t, doorTimer.starts)
}

func TestFloorArrivalWhileIdleOnlyUpdatesIndicator(t *testing.T) {
	ctrl, out, _ := newTestController(config.CV_All)
	idleAt(t, ctrl, 0)
	ctrl.OnFloorArrival(1)
	assert.Equal(t, []int{0, 1}, out.indicator)
	assert.Equal(t, types.Idle, ctrl.State().Behaviour)
	assert.Empty(t, out.motor)
}

func TestInvalidEventsPanic(t *testing.T) {
	ctrl, _, _ := newTestController(config.CV_All)
	assert.Panics(t, func() { ctrl.OnRequestButtonPress(config.NumFloors, types.BT_Cab) })
	assert.Panics(t, func() { ctrl.OnRequestButtonPress(0, types.ButtonType(-1)) })
	assert.Panics(t, func() { ctrl.OnFloorArrival(-1) })
}

func TestStateIsCopy(t *testing.T) {
	ctrl, _, _ := newTestController(config.CV_All)
	idleAt(t, ctrl, 0)
	ctrl.OnRequestButtonPress(3, types.BT_Cab)

	state := ctrl.State()
	state.Requests[3][types.BT_Cab] = false
	state.Floor = 2
	assert.True(t, ctrl.State().Requests[3][types.BT_Cab])
	assert.Equal(t, 0, ctrl.State().Floor)
}
