package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	NumFloors        = 4
	NumButtons       = 3
	SensorPollRate   = 25 * time.Millisecond
	DoorOpenDuration = 3 * time.Second
	ServerAddr       = "localhost:15657"
)

// ClearRequestVariant decides which requests are released when the car stops at a floor.
type ClearRequestVariant int

const (
	// Everyone waiting enters the car, even if they travel the "wrong" way for a while.
	CV_All ClearRequestVariant = iota
	// Only those travelling in the current direction enter, the rest keep waiting.
	CV_InDirn
)

func (cv ClearRequestVariant) String() string {
	switch cv {
	case CV_All:
		return "CV_All"
	case CV_InDirn:
		return "CV_InDirn"
	}
	return "CV_Unknown"
}

type ElevatorType int

const (
	ET_Simulation ElevatorType = iota
	ET_Hardware
)

func (et ElevatorType) String() string {
	switch et {
	case ET_Simulation:
		return "ET_Simulation"
	case ET_Hardware:
		return "ET_Hardware"
	}
	return "ET_Unknown"
}

// Config holds the tunables read once at startup.
type Config struct {
	DoorOpenDuration        time.Duration
	ClearRequestVariant     ClearRequestVariant
	InputPollRate           time.Duration
	ElevatorType            ElevatorType
	ResetSimulatorOnRestart bool
	SimulatorIP             string
	SimulatorPort           string
	HardwareAddr            string
}

func Default() Config {
	return Config{
		DoorOpenDuration:    DoorOpenDuration,
		ClearRequestVariant: CV_All,
		InputPollRate:       SensorPollRate,
		ElevatorType:        ET_Simulation,
		SimulatorIP:         "localhost",
		SimulatorPort:       "15657",
		HardwareAddr:        ServerAddr,
	}
}

// LoadFile overlays the values found in path on top of cfg.
func (cfg *Config) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()
	if err := cfg.Parse(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Parse reads "--key value" lines. Lines not starting with "--" and unknown keys are ignored.
// Keys and enum values are not case-sensitive.
func (cfg *Config) Parse(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "--") {
			continue
		}
		fields := strings.Fields(strings.TrimPrefix(line, "--"))
		if len(fields) < 2 {
			return fmt.Errorf("line %d: missing value for %q", lineNum, line)
		}
		if err := cfg.set(strings.ToLower(fields[0]), fields[1]); err != nil {
			return fmt.Errorf("line %d: %s: %w", lineNum, fields[0], err)
		}
	}
	return scanner.Err()
}

func (cfg *Config) set(key, val string) error {
	switch key {
	case "dooropenduration_s":
		seconds, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return err
		}
		if seconds <= 0 {
			return fmt.Errorf("must be positive, got %v", seconds)
		}
		cfg.DoorOpenDuration = time.Duration(seconds * float64(time.Second))
	case "clearrequestvariant":
		switch strings.ToLower(val) {
		case "cv_all", "all":
			cfg.ClearRequestVariant = CV_All
		case "cv_indirn", "indirn", "indirection":
			cfg.ClearRequestVariant = CV_InDirn
		default:
			return fmt.Errorf("unknown clear request variant %q", val)
		}
	case "inputpollrate_ms":
		ms, err := strconv.Atoi(val)
		if err != nil {
			return err
		}
		if ms <= 0 {
			return fmt.Errorf("must be positive, got %d", ms)
		}
		cfg.InputPollRate = time.Duration(ms) * time.Millisecond
	case "elevatortype":
		switch strings.ToLower(val) {
		case "et_simulation", "simulation":
			cfg.ElevatorType = ET_Simulation
		case "et_comedi", "et_hardware", "comedi", "hardware":
			cfg.ElevatorType = ET_Hardware
		default:
			return fmt.Errorf("unknown elevator type %q", val)
		}
	case "resetsimulatoronrestart":
		n, err := strconv.Atoi(val)
		if err != nil {
			return err
		}
		cfg.ResetSimulatorOnRestart = n != 0
	case "com_ip":
		cfg.SimulatorIP = val
	case "com_port":
		cfg.SimulatorPort = val
	case "hardwareaddr":
		cfg.HardwareAddr = val
	}
	return nil
}
