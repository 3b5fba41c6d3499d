package mocks

// MockMessageQueue is a mock implementation of MessageQueue interface.
// Publish delivers to registered subscribers in-process, so round trips
// through subscription handlers can be asserted without a broker.
type MockMessageQueue struct {
	Published     map[string][][]byte
	Subscribers   map[string][]func([]byte) error
	PublishFunc   func(subject string, data []byte) error
	SubscribeFunc func(subject string, handler func([]byte) error) error
	CloseFunc     func() error
}

func NewMockMessageQueue() *MockMessageQueue {
	return &MockMessageQueue{
		Published:   make(map[string][][]byte),
		Subscribers: make(map[string][]func([]byte) error),
	}
}

func (m *MockMessageQueue) Publish(subject string, data []byte) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(subject, data)
	}
	m.Published[subject] = append(m.Published[subject], data)
	for _, handler := range m.Subscribers[subject] {
		if err := handler(data); err != nil {
			return err
		}
	}
	return nil
}

func (m *MockMessageQueue) Subscribe(subject string, handler func([]byte) error) error {
	if m.SubscribeFunc != nil {
		return m.SubscribeFunc(subject, handler)
	}
	m.Subscribers[subject] = append(m.Subscribers[subject], handler)
	return nil
}

func (m *MockMessageQueue) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}
