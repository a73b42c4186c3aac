package ws

import (
	"io"
	"net"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// MockWebSocketConn records writes and blocks reads until closed.
type MockWebSocketConn struct {
	mu       sync.Mutex
	closed   bool
	closeCh  chan struct{}
	Messages [][]byte
}

func NewMockWebSocketConn() *MockWebSocketConn {
	return &MockWebSocketConn{closeCh: make(chan struct{})}
}

func (m *MockWebSocketConn) SetReadLimit(size int64) {}

func (m *MockWebSocketConn) ReadMessage() (messageType int, p []byte, err error) {
	<-m.closeCh
	return 0, nil, &websocket.CloseError{Code: websocket.CloseNormalClosure}
}

func (m *MockWebSocketConn) WriteMessage(messageType int, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return websocket.ErrCloseSent
	}
	if messageType == websocket.TextMessage {
		m.Messages = append(m.Messages, data)
	}
	return nil
}

func (m *MockWebSocketConn) Written() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]byte, len(m.Messages))
	copy(out, m.Messages)
	return out
}

func (m *MockWebSocketConn) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.closed {
		m.closed = true
		close(m.closeCh)
	}
	return nil
}

func (m *MockWebSocketConn) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

func (m *MockWebSocketConn) SetWriteDeadline(t time.Time) error {
	return nil
}

func (m *MockWebSocketConn) SetReadDeadline(t time.Time) error {
	return nil
}

func (m *MockWebSocketConn) SetPongHandler(h func(appData string) error) {}

func (m *MockWebSocketConn) WriteControl(messageType int, data []byte, deadline time.Time) error {
	return nil
}

func (m *MockWebSocketConn) RemoteAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 8080}
}

func (m *MockWebSocketConn) NextWriter(messageType int) (io.WriteCloser, error) {
	return nil, websocket.ErrCloseSent
}

var _ WebSocketConn = (*MockWebSocketConn)(nil)
