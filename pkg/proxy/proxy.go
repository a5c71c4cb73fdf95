// Package proxy implements cross-thread communication between the
// real-time audio processor and a control thread (UI, host automation,
// MIDI input), grounded directly on
// original_source/src/base/processor_proxy.rs. The audio thread never
// blocks, allocates, or takes a lock that a control thread could hold
// indefinitely: parameter updates and MIDI messages cross via wait-free
// ring buffers (internal/ring).
//
// Only the processor->proxy direction parks a goroutine: a worker drains
// processor-published parameter updates into a shared map, waking on
// demand rather than polling. original_source parks that worker thread
// with std::thread::park and wakes it with JoinHandle::unpark; Go has no
// equivalent primitive exposed to user code, so a capacity-1 buffered
// chan struct{} stands in for it — a non-blocking send is the unpark, a
// channel receive in a select is the park. The proxy->processor
// direction needs no such signal: the audio thread already polls its
// inbound ring buffer once per Process call.
package proxy

import (
	"log/slog"
	"sync"

	"github.com/soakyaudio/go-sampler-core/internal/ring"
	"github.com/soakyaudio/go-sampler-core/pkg/midi"
	"github.com/soakyaudio/go-sampler-core/pkg/param"
	"github.com/soakyaudio/go-sampler-core/pkg/sampler"
)

// proxyMessage is sent from a Proxy to the Source, drained by the audio
// thread once per Process call (pkg/host).
type proxyMessage struct {
	setParameter bool
	paramID      param.ID
	paramValue   param.Value
	midiMessage  midi.Message
}

// processorMessage is sent from the Source (audio thread) to every Proxy
// clone, applied by the parked worker goroutine.
type processorMessage struct {
	id    param.ID
	value param.Value
}

// Proxy is a cloneable handle to a running processor's parameter state,
// meant to be held by a control thread (UI, automation, MIDI input). Every
// clone shares the same underlying parameter map and outbound ring buffer.
type Proxy struct {
	parameterMap *sync.Map // param.ID -> param.Value
	toSource     *ring.Buffer[proxyMessage]
}

// GetParameter returns the most recently observed value for id, if any.
func (p *Proxy) GetParameter(id param.ID) (param.Value, bool) {
	v, ok := p.parameterMap.Load(id)
	if !ok {
		return param.Value{}, false
	}
	return v.(param.Value), true
}

// SetParameter requests a parameter change. Drops the request rather than
// blocking if the outbound ring buffer is momentarily full.
func (p *Proxy) SetParameter(id param.ID, value param.Value) {
	p.toSource.Push(proxyMessage{setParameter: true, paramID: id, paramValue: value})
}

// HandleMidiMessage implements sampler.MidiReceiver by forwarding the
// message to the processor via the same ring buffer as parameter changes.
func (p *Proxy) HandleMidiMessage(message midi.Message) {
	p.toSource.Push(proxyMessage{midiMessage: message})
}

var _ sampler.MidiReceiver = (*Proxy)(nil)

// Source is the processor-side end of the proxy channel: it lives on the
// audio thread, drains inbound proxy messages once per Process call, and
// republishes the processor's parameter snapshot to every Proxy clone via
// a parked worker goroutine.
type Source struct {
	fromProxy *ring.Buffer[proxyMessage]
	toProxy   *ring.Buffer[processorMessage]
	notify    chan struct{}
	done      chan struct{}
	closeOnce sync.Once

	sharedParameterMap *sync.Map
}

// NewSource creates a Source and its first Proxy clone. bufferSize bounds
// the number of in-flight, not-yet-processed messages in either direction.
func NewSource(bufferSize int) (*Source, *Proxy) {
	s := &Source{
		fromProxy:          ring.New[proxyMessage](bufferSize),
		toProxy:            ring.New[processorMessage](bufferSize),
		notify:             make(chan struct{}, 1),
		done:               make(chan struct{}),
		sharedParameterMap: &sync.Map{},
	}
	go s.runWorker()
	slog.Debug("proxy worker started", "buffer_size", bufferSize)
	return s, s.GetProxy()
}

// GetProxy returns a new handle sharing this Source's parameter map and
// inbound ring buffer, equivalent to cloning the original's Arc-backed
// ProcessorProxy.
func (s *Source) GetProxy() *Proxy {
	return &Proxy{
		parameterMap: s.sharedParameterMap,
		toSource:     s.fromProxy,
	}
}

// runWorker applies processor->proxy parameter updates to the shared map.
// It parks on notify (or done, for shutdown), exactly like the original's
// thread::park loop.
func (s *Source) runWorker() {
	for {
		select {
		case <-s.done:
			return
		case <-s.notify:
			for {
				msg, ok := s.toProxy.Pop()
				if !ok {
					break
				}
				s.sharedParameterMap.Store(msg.id, msg.value)
			}
		}
	}
}

// Close stops the worker goroutine. Safe to call more than once.
func (s *Source) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		slog.Debug("proxy worker stopped")
	})
}

// HandleMessages drains every pending proxy->processor message into the
// processor, applying parameter changes and forwarding MIDI messages. Meant
// to be called once per audio callback; never blocks.
func (s *Source) HandleMessages(processor sampler.AudioProcessor, midiReceiver sampler.MidiReceiver) {
	for {
		msg, ok := s.fromProxy.Pop()
		if !ok {
			return
		}
		if msg.setParameter {
			processor.SetParameter(msg.paramID, msg.paramValue)
		} else {
			midiReceiver.HandleMidiMessage(msg.midiMessage)
		}
	}
}

// PublishParameter pushes a processor-owned parameter value out to every
// Proxy clone and wakes the worker goroutine (the "unpark" side of the
// park/unpark pair). Drops the update rather than blocking if the ring
// buffer is momentarily full; a dropped update is not re-sent.
func (s *Source) PublishParameter(id param.ID, value param.Value) {
	s.toProxy.Push(processorMessage{id: id, value: value})
	select {
	case s.notify <- struct{}{}:
	default:
	}
}
