// This file defines types and functions for interfacing with the elevator hardware.
// Both backends talk to an elevator server over TCP using 4-byte messages.
package elevio

import (
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"singlevator/src/config"
	"singlevator/src/types"
)

const dialTimeout = 5 * time.Second

const (
	cmdReset byte = iota
	cmdMotorDirection
	cmdButtonLamp
	cmdFloorIndicator
	cmdDoorOpenLamp
	cmdStopLamp
	cmdButton
	cmdFloor
	cmdStop
	cmdObstruction
)

type Input interface {
	GetButton(button types.ButtonType, floor int) bool
	GetFloor() int
	GetStop() bool
	GetObstruction() bool
}

type Output interface {
	SetMotorDirection(dir types.MotorDirection)
	SetButtonLamp(button types.ButtonType, floor int, value bool)
	SetFloorIndicator(floor int)
	SetDoorOpenLamp(value bool)
	SetStopLamp(value bool)
}

type Device interface {
	Input
	Output
	io.Closer
}

// Open connects to the backend selected by cfg and turns off all lamps.
func Open(cfg config.Config) (Device, error) {
	var dev Device
	switch cfg.ElevatorType {
	case config.ET_Simulation:
		sim, err := DialSimulator(net.JoinHostPort(cfg.SimulatorIP, cfg.SimulatorPort))
		if err != nil {
			return nil, err
		}
		if cfg.ResetSimulatorOnRestart {
			sim.Reset()
		}
		dev = sim
	case config.ET_Hardware:
		hw, err := DialHardware(cfg.HardwareAddr)
		if err != nil {
			return nil, err
		}
		dev = hw
	default:
		return nil, fmt.Errorf("unknown elevator type %v", cfg.ElevatorType)
	}
	ResetOutputs(dev)
	slog.Info("Elevator device opened", "type", cfg.ElevatorType)
	return dev, nil
}

// ResetOutputs turns off every lamp and points the floor indicator at the ground floor.
func ResetOutputs(out Output) {
	for floor := range config.NumFloors {
		for btn := range config.NumButtons {
			out.SetButtonLamp(types.ButtonType(btn), floor, false)
		}
	}
	out.SetStopLamp(false)
	out.SetDoorOpenLamp(false)
	out.SetFloorIndicator(0)
}

// conn serializes request/response pairs on the server connection.
type conn struct {
	mtx sync.Mutex
	c   net.Conn
}

func dial(addr string) (*conn, error) {
	c, err := net.DialTimeout("tcp", addr, dialTimeout)
	if err != nil {
		return nil, fmt.Errorf("connect to elevator server %s: %w", addr, err)
	}
	return &conn{c: c}, nil
}

func (c *conn) Close() error {
	return c.c.Close()
}

func (c *conn) SetMotorDirection(dir types.MotorDirection) {
	c.write([4]byte{cmdMotorDirection, byte(dir), 0, 0})
}

func (c *conn) SetButtonLamp(button types.ButtonType, floor int, value bool) {
	c.write([4]byte{cmdButtonLamp, byte(button), byte(floor), toByte(value)})
}

func (c *conn) SetFloorIndicator(floor int) {
	c.write([4]byte{cmdFloorIndicator, byte(floor), 0, 0})
}

func (c *conn) SetDoorOpenLamp(value bool) {
	c.write([4]byte{cmdDoorOpenLamp, toByte(value), 0, 0})
}

func (c *conn) SetStopLamp(value bool) {
	c.write([4]byte{cmdStopLamp, toByte(value), 0, 0})
}

func (c *conn) GetButton(button types.ButtonType, floor int) bool {
	a := c.read([4]byte{cmdButton, byte(button), byte(floor), 0})
	return toBool(a[1])
}

func (c *conn) GetFloor() int {
	a := c.read([4]byte{cmdFloor, 0, 0, 0})
	if a[1] != 0 {
		return int(a[2])
	}
	return -1
}

func (c *conn) GetStop() bool {
	a := c.read([4]byte{cmdStop, 0, 0, 0})
	return toBool(a[1])
}

func (c *conn) GetObstruction() bool {
	a := c.read([4]byte{cmdObstruction, 0, 0, 0})
	return toBool(a[1])
}

func (c *conn) read(in [4]byte) [4]byte {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if _, err := c.c.Write(in[:]); err != nil {
		panic("Lost connection to Elevator Server")
	}
	var out [4]byte
	if _, err := io.ReadFull(c.c, out[:]); err != nil {
		panic("Lost connection to Elevator Server")
	}
	return out
}

func (c *conn) write(in [4]byte) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if _, err := c.c.Write(in[:]); err != nil {
		panic("Lost connection to Elevator Server")
	}
}

func toByte(a bool) byte {
	if a {
		return 1
	}
	return 0
}

func toBool(a byte) bool {
	return a != 0
}
