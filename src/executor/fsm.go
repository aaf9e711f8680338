// Contains the finite state machine for single elevator control.
package executor

import (
	"log/slog"
	"sync"
	"time"

	"github.com/tiendc/go-deepcopy"

	"singlevator/lib/driver-go/elevio"
	"singlevator/src/config"
	"singlevator/src/elev"
	"singlevator/src/types"
)

// DoorTimer is the one-shot timer the controller starts when the door opens.
type DoorTimer interface {
	Start(duration time.Duration)
	Stop()
}

// Controller owns the elevator state and serializes every event that changes it.
type Controller struct {
	mtx       sync.Mutex
	elevator  elev.ElevState
	out       elevio.Output
	doorTimer DoorTimer
}

func NewController(cfg config.Config, out elevio.Output, doorTimer DoorTimer) *Controller {
	return &Controller{
		elevator:  elev.InitElevState(cfg),
		out:       out,
		doorTimer: doorTimer,
	}
}

// State returns a deep copy of the current elevator state.
func (ctrl *Controller) State() elev.ElevState {
	ctrl.mtx.Lock()
	defer ctrl.mtx.Unlock()

	snapshot := new(elev.ElevState)
	if err := deepcopy.Copy(snapshot, &ctrl.elevator); err != nil {
		panic(err)
	}
	return *snapshot
}

// OnInitBetweenFloors moves the car down towards the nearest floor sensor.
func (ctrl *Controller) OnInitBetweenFloors() {
	ctrl.mtx.Lock()
	defer ctrl.mtx.Unlock()

	slog.Info("No floor detected, moving down to first floor sensor")
	ctrl.out.SetMotorDirection(types.MD_Down)
	ctrl.elevator.Dir = types.MD_Down
	ctrl.elevator.Behaviour = types.Moving
}

// OnRequestButtonPress records or serves a button press depending on the current behaviour.
func (ctrl *Controller) OnRequestButtonPress(btnFloor int, btnType types.ButtonType) {
	btnEvent := types.ButtonEvent{Floor: btnFloor, Button: btnType}
	btnEvent.MustBeValid()

	ctrl.mtx.Lock()
	defer ctrl.mtx.Unlock()

	slog.Debug("Button pressed", "button", btnEvent, "state", ctrl.elevator)

	elevator := &ctrl.elevator
	switch elevator.Behaviour {
	case types.DoorOpen:
		if elev.ShouldClearImmediately(*elevator, btnFloor, btnType) {
			ctrl.doorTimer.Start(elevator.Config.DoorOpenDuration)
		} else {
			elevator.Requests[btnFloor][btnType] = true
		}

	case types.Moving:
		elevator.Requests[btnFloor][btnType] = true

	case types.Idle:
		elevator.Requests[btnFloor][btnType] = true
		pair := elev.ChooseDirection(*elevator)
		elevator.Dir = pair.Dir
		elevator.Behaviour = pair.Behaviour
		switch pair.Behaviour {
		case types.DoorOpen:
			ctrl.openDoor()
			*elevator = elev.ClearAtCurrentFloor(*elevator)
		case types.Moving:
			ctrl.out.SetMotorDirection(elevator.Dir)
		case types.Idle:
		}
	}

	ctrl.setAllLights()
	slog.Debug("New state", "state", ctrl.elevator)
}

// OnFloorArrival updates the floor indicator and stops the car if it should serve this floor.
func (ctrl *Controller) OnFloorArrival(newFloor int) {
	if !types.ValidFloor(newFloor) {
		panic("floor arrival with undefined floor")
	}

	ctrl.mtx.Lock()
	defer ctrl.mtx.Unlock()

	slog.Debug("Floor arrival", "floor", newFloor, "state", ctrl.elevator)

	elevator := &ctrl.elevator
	elevator.Floor = newFloor
	ctrl.out.SetFloorIndicator(newFloor)

	switch elevator.Behaviour {
	case types.Moving:
		if elev.ShouldStop(*elevator) {
			slog.Debug("Stopping at floor", "floor", newFloor)
			ctrl.out.SetMotorDirection(types.MD_Stop)
			ctrl.openDoor()
			*elevator = elev.ClearAtCurrentFloor(*elevator)
			ctrl.setAllLights()
			elevator.Behaviour = types.DoorOpen
		} else {
			slog.Debug("Continuing past floor", "floor", newFloor, "direction", elevator.Dir)
		}
	default:
	}

	slog.Debug("New state", "state", ctrl.elevator)
}

// OnDoorTimeout keeps the door open for requests at this floor, otherwise closes it and moves on.
func (ctrl *Controller) OnDoorTimeout() {
	ctrl.mtx.Lock()
	defer ctrl.mtx.Unlock()

	elevator := &ctrl.elevator
	if elevator.Behaviour != types.DoorOpen {
		slog.Debug("Door timeout ignored - door not open", "behaviour", elevator.Behaviour)
		return
	}
	slog.Debug("Door timer expired", "state", ctrl.elevator)

	pair := elev.ChooseDirection(*elevator)
	elevator.Dir = pair.Dir
	elevator.Behaviour = pair.Behaviour

	switch pair.Behaviour {
	case types.DoorOpen:
		ctrl.doorTimer.Start(elevator.Config.DoorOpenDuration)
		*elevator = elev.ClearAtCurrentFloor(*elevator)
		ctrl.setAllLights()
	case types.Moving, types.Idle:
		ctrl.closeDoor()
		ctrl.out.SetMotorDirection(elevator.Dir)
	}

	slog.Debug("New state", "state", ctrl.elevator)
}
