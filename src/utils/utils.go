package utils

import (
	"singlevator/src/config"
	"singlevator/src/types"
)

// ForEachRequest is a helper function that reduces indentation when performing an action on all requests
func ForEachRequest(requests types.Requests, action func(floor int, btn types.ButtonType, active bool)) {
	for floor := range config.NumFloors {
		for btn := range config.NumButtons {
			action(floor, types.ButtonType(btn), requests[floor][btn])
		}
	}
}
