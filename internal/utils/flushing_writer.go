package utils

import (
	"io"
	"sync"
)

type flusher interface {
	Flush() error
}

// FlushingWriter serializes writes from concurrent callers and flushes buffered sinks after every write,
// so each Write call reaches the sink as one contiguous chunk.
type FlushingWriter struct {
	sink  io.Writer
	mutex sync.Mutex
}

// NewFlushingWriter wraps sink; an already wrapped sink is returned unchanged.
func NewFlushingWriter(sink io.Writer) io.Writer {
	if sink == nil {
		return io.Discard
	}
	if _, alreadyWrapped := sink.(*FlushingWriter); alreadyWrapped {
		return sink
	}
	return &FlushingWriter{sink: sink}
}

// Write delegates to the sink under the writer lock and flushes it when supported.
func (flushingWriter *FlushingWriter) Write(data []byte) (int, error) {
	flushingWriter.mutex.Lock()
	defer flushingWriter.mutex.Unlock()

	bytesWritten, writeError := flushingWriter.sink.Write(data)
	if writeError != nil {
		return bytesWritten, writeError
	}

	if flushableSink, supportsFlush := flushingWriter.sink.(flusher); supportsFlush {
		if flushError := flushableSink.Flush(); flushError != nil {
			return bytesWritten, flushError
		}
	}
	return bytesWritten, nil
}
