// Package services provides external service integrations for l2g.
// It includes functionality for streaming G-code programs to networked
// machine controllers.
package services

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"strings"
	"time"
)

// SenderService defines the interface for streaming a G-code program to a
// machine controller. Implementations send the program line by line and
// wait for the controller to acknowledge each line.
type SenderService interface {
	Send(program io.Reader) (linesSent int, err error)
}

// Dialer abstracts net.Dial so tests can swap in their own connections.
type Dialer interface {
	Dial(network, address string) (net.Conn, error)
}

// grblSenderServiceImpl is the concrete implementation of SenderService
// that speaks the GRBL-style line/ok protocol over TCP.
type grblSenderServiceImpl struct {
	dialer  Dialer
	address string
	timeout time.Duration
}

// NewGrblSenderService creates a new instance of SenderService pointed at
// the controller's TCP address, with a dialer suitable for production use.
func NewGrblSenderService(address string) *grblSenderServiceImpl {
	return &grblSenderServiceImpl{
		dialer: &net.Dialer{
			Timeout: 10 * time.Second,
		},
		address: address,
		timeout: 30 * time.Second,
	}
}

// NewGrblSenderServiceWithDialer creates a SenderService with a custom
// dialer, used by tests to talk to a local listener.
func NewGrblSenderServiceWithDialer(address string, dialer Dialer, timeout time.Duration) *grblSenderServiceImpl {
	return &grblSenderServiceImpl{
		dialer:  dialer,
		address: address,
		timeout: timeout,
	}
}

// Send streams the program to the controller one line at a time, waiting
// for an "ok" acknowledgment after each line. Blank lines are skipped.
// An "error:N" response aborts the transfer with the offending line.
func (s *grblSenderServiceImpl) Send(program io.Reader) (int, error) {
	conn, err := s.dialer.Dial("tcp", s.address)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to machine at %s: %w", s.address, err)
	}
	defer conn.Close()

	responses := bufio.NewScanner(conn)
	scanner := bufio.NewScanner(program)
	linesSent := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if err := conn.SetDeadline(time.Now().Add(s.timeout)); err != nil {
			return linesSent, err
		}

		if _, err := fmt.Fprintf(conn, "%s\n", line); err != nil {
			return linesSent, fmt.Errorf("failed to send line %d: %w", linesSent+1, err)
		}

		response, err := awaitAcknowledgment(responses)
		if err != nil {
			return linesSent, fmt.Errorf("machine rejected line %d (%s): %w", linesSent+1, line, err)
		}

		if response != "ok" {
			return linesSent, fmt.Errorf("machine rejected line %d (%s): %s", linesSent+1, line, response)
		}

		linesSent++
	}

	if err := scanner.Err(); err != nil {
		return linesSent, err
	}

	return linesSent, nil
}

// awaitAcknowledgment reads controller output until an "ok" or "error:N"
// line appears. Status chatter (lines in angle brackets) is ignored.
func awaitAcknowledgment(responses *bufio.Scanner) (string, error) {
	for responses.Scan() {
		response := strings.TrimSpace(responses.Text())

		if response == "" || strings.HasPrefix(response, "<") {
			continue
		}

		if response == "ok" || strings.HasPrefix(response, "error:") {
			return response, nil
		}
	}

	if err := responses.Err(); err != nil {
		return "", err
	}

	return "", fmt.Errorf("connection closed before acknowledgment")
}
