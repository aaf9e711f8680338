package executor

import (
	"singlevator/src/types"
	"singlevator/src/utils"
)

// setAllLights makes every button lamp mirror its request bit.
func (ctrl *Controller) setAllLights() {
	utils.ForEachRequest(ctrl.elevator.Requests, func(floor int, btn types.ButtonType, active bool) {
		ctrl.out.SetButtonLamp(btn, floor, active)
	})
}
