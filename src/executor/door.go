package executor

// openDoor sets the door lamp and starts the door timer. Callers set the behaviour.
func (ctrl *Controller) openDoor() {
	ctrl.out.SetDoorOpenLamp(true)
	ctrl.doorTimer.Start(ctrl.elevator.Config.DoorOpenDuration)
}

func (ctrl *Controller) closeDoor() {
	ctrl.doorTimer.Stop()
	ctrl.out.SetDoorOpenLamp(false)
}
