package services_test

import (
	"bufio"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"

	"github.com/louiss0/l2g/services"
)

// Test Suite setup
func TestServices(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Services Suite")
}

// pipeDialer hands out one end of an in-memory pipe instead of dialing out.
type pipeDialer struct {
	conn net.Conn
	err  error
}

func (d pipeDialer) Dial(network, address string) (net.Conn, error) {
	return d.conn, d.err
}

// startController runs a fake GRBL controller on the other end of a pipe.
// For every received line it writes the scripted responses, falling back to
// "ok" once the script runs out. An empty response closes the connection.
func startController(responses []string) services.Dialer {
	client, server := net.Pipe()

	go func() {
		defer server.Close()
		scanner := bufio.NewScanner(server)
		lineIndex := 0
		for scanner.Scan() {
			response := "ok"
			if lineIndex < len(responses) {
				response = responses[lineIndex]
			}
			lineIndex++

			if response == "" {
				return
			}
			if _, err := fmt.Fprintf(server, "%s\n", response); err != nil {
				return
			}
		}
	}()

	return pipeDialer{conn: client}
}

func newSender(dialer services.Dialer) services.SenderService {
	return services.NewGrblSenderServiceWithDialer("10.0.0.5:23", dialer, 2*time.Second)
}

var _ = Describe("GrblSenderService", func() {
	assertT := assert.New(GinkgoT())

	Describe("Send", func() {
		It("should stream every line and count the acknowledgments", func() {
			sender := newSender(startController(nil))

			linesSent, err := sender.Send(strings.NewReader("G90\nG21\nM5\n"))

			assertT.NoError(err)
			assertT.Equal(3, linesSent)
		})

		It("should skip blank lines without waiting for them", func() {
			sender := newSender(startController(nil))

			linesSent, err := sender.Send(strings.NewReader("G90\n\n   \nG21\n"))

			assertT.NoError(err)
			assertT.Equal(2, linesSent)
		})

		It("should ignore status chatter before the acknowledgment", func() {
			sender := newSender(startController([]string{
				"<Idle|MPos:0.000,0.000,0.000>\nok",
			}))

			linesSent, err := sender.Send(strings.NewReader("G90\n"))

			assertT.NoError(err)
			assertT.Equal(1, linesSent)
		})

		It("should abort on an error response and name the offending line", func() {
			sender := newSender(startController([]string{"ok", "error:9"}))

			linesSent, err := sender.Send(strings.NewReader("G90\nG91\nM5\n"))

			assertT.Error(err)
			assertT.Contains(err.Error(), "error:9")
			assertT.Contains(err.Error(), "G91")
			assertT.Equal(1, linesSent)
		})

		It("should report a closed connection", func() {
			sender := newSender(startController([]string{""}))

			_, err := sender.Send(strings.NewReader("G90\n"))

			assertT.Error(err)
		})

		It("should wrap a failed dial with the address", func() {
			dialer := pipeDialer{err: fmt.Errorf("connection refused")}
			sender := newSender(dialer)

			linesSent, err := sender.Send(strings.NewReader("G90\n"))

			assertT.Error(err)
			assertT.Contains(err.Error(), "10.0.0.5:23")
			assertT.Equal(0, linesSent)
		})
	})
})
