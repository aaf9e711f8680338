package elev

import (
	"singlevator/src/config"
	"singlevator/src/types"
)

// ChooseDirection decides where to go next based on the current travel direction.
//  1. Keep going the same way as long as there are requests in that direction.
//  2. Otherwise serve a request here, then turn around.
//  3. With no established direction, requests here win, then above, then below.
func ChooseDirection(elevator ElevState) types.DirnBehaviourPair {
	switch elevator.Dir {
	case types.MD_Up:
		switch {
		case RequestsAbove(elevator):
			return types.DirnBehaviourPair{Dir: types.MD_Up, Behaviour: types.Moving}
		case RequestsHere(elevator):
			return types.DirnBehaviourPair{Dir: types.MD_Down, Behaviour: types.DoorOpen}
		case RequestsBelow(elevator):
			return types.DirnBehaviourPair{Dir: types.MD_Down, Behaviour: types.Moving}
		default:
			return types.DirnBehaviourPair{Dir: types.MD_Stop, Behaviour: types.Idle}
		}
	case types.MD_Down:
		switch {
		case RequestsBelow(elevator):
			return types.DirnBehaviourPair{Dir: types.MD_Down, Behaviour: types.Moving}
		case RequestsHere(elevator):
			return types.DirnBehaviourPair{Dir: types.MD_Up, Behaviour: types.DoorOpen}
		case RequestsAbove(elevator):
			return types.DirnBehaviourPair{Dir: types.MD_Up, Behaviour: types.Moving}
		default:
			return types.DirnBehaviourPair{Dir: types.MD_Stop, Behaviour: types.Idle}
		}
	case types.MD_Stop:
		// There should only be one request in this case. Checking above before below is arbitrary.
		switch {
		case RequestsHere(elevator):
			return types.DirnBehaviourPair{Dir: types.MD_Stop, Behaviour: types.DoorOpen}
		case RequestsAbove(elevator):
			return types.DirnBehaviourPair{Dir: types.MD_Up, Behaviour: types.Moving}
		case RequestsBelow(elevator):
			return types.DirnBehaviourPair{Dir: types.MD_Down, Behaviour: types.Moving}
		default:
			return types.DirnBehaviourPair{Dir: types.MD_Stop, Behaviour: types.Idle}
		}
	}
	return types.DirnBehaviourPair{Dir: types.MD_Stop, Behaviour: types.Idle}
}

// ShouldStop checks if a moving elevator should stop at its current floor.
func ShouldStop(elevator ElevState) bool {
	switch elevator.Dir {
	case types.MD_Down:
		return elevator.Requests[elevator.Floor][types.BT_HallDown] ||
			elevator.Requests[elevator.Floor][types.BT_Cab] ||
			!RequestsBelow(elevator)
	case types.MD_Up:
		return elevator.Requests[elevator.Floor][types.BT_HallUp] ||
			elevator.Requests[elevator.Floor][types.BT_Cab] ||
			!RequestsAbove(elevator)
	default:
		return true
	}
}

// ShouldClearImmediately reports whether a press made while the door is open is served by the open door.
func ShouldClearImmediately(elevator ElevState, btnFloor int, btnType types.ButtonType) bool {
	types.ButtonEvent{Floor: btnFloor, Button: btnType}.MustBeValid()
	switch elevator.Config.ClearRequestVariant {
	case config.CV_All:
		return elevator.Floor == btnFloor
	case config.CV_InDirn:
		return elevator.Floor == btnFloor &&
			((elevator.Dir == types.MD_Up && btnType == types.BT_HallUp) ||
				(elevator.Dir == types.MD_Down && btnType == types.BT_HallDown) ||
				elevator.Dir == types.MD_Stop ||
				btnType == types.BT_Cab)
	default:
		return false
	}
}

// ClearAtCurrentFloor returns a copy of elevator with the requests served at its floor removed.
func ClearAtCurrentFloor(elevator ElevState) ElevState {
	mustBeAtFloor(elevator)
	requests := &elevator.Requests[elevator.Floor]

	switch elevator.Config.ClearRequestVariant {
	case config.CV_All:
		for btn := range config.NumButtons {
			requests[btn] = false
		}

	case config.CV_InDirn:
		requests[types.BT_Cab] = false
		switch elevator.Dir {
		case types.MD_Up:
			requests[types.BT_HallUp] = false
			if !RequestsAbove(elevator) {
				requests[types.BT_HallDown] = false
			}
		case types.MD_Down:
			requests[types.BT_HallDown] = false
			if !RequestsBelow(elevator) {
				requests[types.BT_HallUp] = false
			}
		default:
			requests[types.BT_HallUp] = false
			requests[types.BT_HallDown] = false
		}
	}
	return elevator
}

func RequestsAbove(elevator ElevState) bool {
	return countRequests(elevator, elevator.Floor+1, config.NumFloors) > 0
}

func RequestsBelow(elevator ElevState) bool {
	return countRequests(elevator, 0, elevator.Floor) > 0
}

func RequestsHere(elevator ElevState) bool {
	mustBeAtFloor(elevator)
	return countRequests(elevator, elevator.Floor, elevator.Floor+1) > 0
}

func countRequests(elevator ElevState, startFloor int, endFloor int) (result int) {
	for floor := max(startFloor, 0); floor < min(endFloor, config.NumFloors); floor++ {
		for btn := range config.NumButtons {
			if elevator.Requests[floor][btn] {
				result++
			}
		}
	}
	return result
}

func mustBeAtFloor(elevator ElevState) {
	if !types.ValidFloor(elevator.Floor) {
		panic("elevator floor is undefined")
	}
}
