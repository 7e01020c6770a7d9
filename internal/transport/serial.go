package transport

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.bug.st/serial"
)

const DefaultBaudRate = 57600

// SerialPort is a USB/UART link to the radio.
type SerialPort struct {
	portName    string
	baudRate    int
	readTimeout time.Duration

	mu      sync.Mutex
	port    serial.Port
	writeMu sync.Mutex
}

func NewSerialPort(portName string, baudRate int, readTimeout time.Duration) *SerialPort {
	return &SerialPort{
		portName:    portName,
		baudRate:    baudRate,
		readTimeout: readTimeout,
	}
}

// Ports lists the serial ports visible to the host.
func Ports() ([]string, error) {
	return serial.GetPortsList()
}

func (p *SerialPort) Open(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.port != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.portName == "" {
		return errors.New("serial port is empty")
	}
	if p.baudRate <= 0 {
		return fmt.Errorf("invalid serial baud rate: %d", p.baudRate)
	}

	port, err := serial.Open(p.portName, &serial.Mode{BaudRate: p.baudRate})
	if err != nil {
		return fmt.Errorf("open serial port %q: %w", p.portName, err)
	}
	if p.readTimeout > 0 {
		if err := port.SetReadTimeout(p.readTimeout); err != nil {
			_ = port.Close()
			return fmt.Errorf("set serial read timeout: %w", err)
		}
	}
	p.port = port
	return nil
}

func (p *SerialPort) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.port == nil {
		return nil
	}
	err := p.port.Close()
	p.port = nil
	return err
}

// Read returns 0, nil when the read timeout elapses without data.
func (p *SerialPort) Read(b []byte) (int, error) {
	port, err := p.current()
	if err != nil {
		return 0, err
	}
	return port.Read(b)
}

func (p *SerialPort) Write(b []byte) (int, error) {
	port, err := p.current()
	if err != nil {
		return 0, err
	}
	p.writeMu.Lock()
	defer p.writeMu.Unlock()
	return port.Write(b)
}

func (p *SerialPort) current() (serial.Port, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.port == nil {
		return nil, errors.New("serial port is not open")
	}
	return p.port, nil
}
