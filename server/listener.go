package server

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

// firstActivationFD is where systemd places the first passed socket.
const firstActivationFD = 3

// listen prefers a socket handed over by systemd, then a unix socket for
// "unix:/path" addresses, then TCP.
func listen(address string) (net.Listener, error) {
	ln, err := activationListener()
	if err != nil || ln != nil {
		return ln, err
	}
	if socket, ok := strings.CutPrefix(address, "unix:"); ok {
		_ = os.Remove(socket)
		return net.Listen("unix", socket)
	}
	return net.Listen("tcp", address)
}

// activationListener returns nil without error when the process was not
// socket activated.
func activationListener() (net.Listener, error) {
	pid, ok := envInt("LISTEN_PID")
	if !ok || pid != os.Getpid() {
		return nil, nil
	}
	fds, ok := envInt("LISTEN_FDS")
	if !ok {
		if strings.TrimSpace(os.Getenv("LISTEN_FDS")) != "" {
			return nil, fmt.Errorf("socket activation: invalid LISTEN_FDS %q", os.Getenv("LISTEN_FDS"))
		}
		return nil, nil
	}
	if fds < 1 {
		return nil, nil
	}

	file := os.NewFile(uintptr(firstActivationFD), "listen-fd-"+strconv.Itoa(firstActivationFD))
	if file == nil {
		return nil, fmt.Errorf("socket activation: fd %d unavailable", firstActivationFD)
	}
	defer file.Close()
	ln, err := net.FileListener(file)
	if err != nil {
		return nil, fmt.Errorf("socket activation: %w", err)
	}
	for _, key := range []string{"LISTEN_PID", "LISTEN_FDS", "LISTEN_FDNAMES"} {
		_ = os.Unsetenv(key)
	}
	return ln, nil
}

func envInt(key string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	return n, err == nil
}
