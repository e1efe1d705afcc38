package sftp

import (
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"sync"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"

	"github.com/gobeaver/iokit"
)

// connCache is the process-wide connection cache: one established client per
// host:port, created lazily, shared by every File targeting that host, never
// torn down. The dial function is swappable for tests.
type connCache struct {
	mu    sync.Mutex
	conns map[string]remote
	dial  func(hostport string) (remote, error)
}

var conns = &connCache{
	conns: make(map[string]remote),
	dial:  dialHost,
}

// client returns the cached client for hostport, dialing on first use. The
// whole lookup-then-dial sequence runs under one lock, so concurrent first
// use of the same host cannot establish a second connection. A failed dial
// is not cached; the next call retries the connect.
func (c *connCache) client(hostport string) (remote, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if r, ok := c.conns[hostport]; ok {
		return r, nil
	}
	r, err := c.dial(hostport)
	if err != nil {
		return nil, err
	}
	c.conns[hostport] = r
	return r, nil
}

// dialHost establishes the SSH transport and SFTP client for one host:port,
// with credentials from the environment.
func dialHost(hostport string) (remote, error) {
	if _, _, err := net.SplitHostPort(hostport); err != nil {
		return nil, fmt.Errorf("%w: %q", iokit.ErrBadRemoteURI, hostport)
	}

	cfg, err := iokit.GetConfig()
	if err != nil {
		return nil, err
	}

	sshConfig := &ssh.ClientConfig{
		User:            cfg.SFTPUsername,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(), // TODO: Use known_hosts in production
	}
	if cfg.SFTPPrivateKey != "" {
		keyData, err := os.ReadFile(cfg.SFTPPrivateKey)
		if err != nil {
			return nil, fmt.Errorf("failed to read private key: %w", err)
		}
		signer, err := ssh.ParsePrivateKey(keyData)
		if err != nil {
			return nil, fmt.Errorf("failed to parse private key: %w", err)
		}
		sshConfig.Auth = append(sshConfig.Auth, ssh.PublicKeys(signer))
	}
	if cfg.SFTPPassword != "" {
		sshConfig.Auth = append(sshConfig.Auth, ssh.Password(cfg.SFTPPassword))
	}
	if len(sshConfig.Auth) == 0 {
		return nil, fmt.Errorf("no authentication method configured for %s", hostport)
	}

	sshConn, err := ssh.Dial("tcp", hostport, sshConfig)
	if err != nil {
		slog.Warn("could not connect to sftp host", "host", hostport, "err", err)
		return nil, err
	}

	packet := cfg.MaxChunk
	if packet <= 0 {
		packet = DefaultMaxChunk
	}
	client, err := sftp.NewClient(sshConn, sftp.MaxPacket(packet))
	if err != nil {
		sshConn.Close()
		return nil, err
	}

	return sftpRemote{client}, nil
}

// sftpRemote adapts *sftp.Client to the remote interface.
type sftpRemote struct {
	c *sftp.Client
}

func (r sftpRemote) Stat(path string) (os.FileInfo, error) { return r.c.Stat(path) }

func (r sftpRemote) Open(path string) (io.ReadCloser, error) { return r.c.Open(path) }

func (r sftpRemote) Create(path string) (io.WriteCloser, error) { return r.c.Create(path) }

func (r sftpRemote) MkdirAll(path string) error { return r.c.MkdirAll(path) }
