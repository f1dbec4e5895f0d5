package httpx

import "sync"

// SensitiveDataMaskerMock is a mock implementation of sensitiveDataMasker.
type SensitiveDataMaskerMock struct {
	MaskFunc func(input []byte) []byte

	calls struct {
		Mask []struct {
			Input []byte
		}
	}
	lockMask sync.RWMutex
}

func (mock *SensitiveDataMaskerMock) Mask(input []byte) []byte {
	if mock.MaskFunc == nil {
		panic("SensitiveDataMaskerMock.MaskFunc: method is nil but sensitiveDataMasker.Mask was just called")
	}

	mock.lockMask.Lock()
	mock.calls.Mask = append(mock.calls.Mask, struct{ Input []byte }{Input: input})
	mock.lockMask.Unlock()

	return mock.MaskFunc(input)
}

func (mock *SensitiveDataMaskerMock) MaskCalls() []struct{ Input []byte } {
	mock.lockMask.RLock()
	defer mock.lockMask.RUnlock()

	return mock.calls.Mask
}
