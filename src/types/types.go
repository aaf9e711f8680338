package types

import (
	"fmt"

	"singlevator/src/config"
)

// Requests holds one pending-request bit per floor and button type.
type Requests [config.NumFloors][config.NumButtons]bool

type MotorDirection int

const (
	MD_Up   MotorDirection = 1
	MD_Down MotorDirection = -1
	MD_Stop MotorDirection = 0
)

func (md MotorDirection) String() string {
	switch md {
	case MD_Up:
		return "MD_Up"
	case MD_Down:
		return "MD_Down"
	case MD_Stop:
		return "MD_Stop"
	}
	return "MD_Undefined"
}

type ButtonType int

const (
	BT_HallUp ButtonType = iota
	BT_HallDown
	BT_Cab
)

func (bt ButtonType) String() string {
	switch bt {
	case BT_HallUp:
		return "BT_HallUp"
	case BT_HallDown:
		return "BT_HallDown"
	case BT_Cab:
		return "BT_Cab"
	}
	return "BT_Undefined"
}

type ButtonEvent struct {
	Floor  int
	Button ButtonType
}

func (btnEvent ButtonEvent) String() string {
	switch btnEvent.Button {
	case BT_HallUp:
		return fmt.Sprintf("HallUp(%d)", btnEvent.Floor)
	case BT_HallDown:
		return fmt.Sprintf("HallDown(%d)", btnEvent.Floor)
	case BT_Cab:
		return fmt.Sprintf("Cab(%d)", btnEvent.Floor)
	}
	return "Unknown"
}

type ElevBehaviour int

const (
	Idle ElevBehaviour = iota
	Moving
	DoorOpen
)

func (eb ElevBehaviour) String() string {
	switch eb {
	case Idle:
		return "Idle"
	case Moving:
		return "Moving"
	case DoorOpen:
		return "DoorOpen"
	}
	return "Undefined"
}

// Stores direction and behaviour to keep track of direction even when elevator is idle
type DirnBehaviourPair struct {
	Dir       MotorDirection
	Behaviour ElevBehaviour
}

// ValidFloor reports whether floor is a landing index.
func ValidFloor(floor int) bool {
	return floor >= 0 && floor < config.NumFloors
}

// MustBeValid panics if the event names a floor or button outside the shaft.
func (btnEvent ButtonEvent) MustBeValid() {
	if !ValidFloor(btnEvent.Floor) {
		panic(fmt.Sprintf("floor %d out of range [0, %d)", btnEvent.Floor, config.NumFloors))
	}
	if btnEvent.Button < BT_HallUp || btnEvent.Button > BT_Cab {
		panic(fmt.Sprintf("button %d out of range", btnEvent.Button))
	}
}
