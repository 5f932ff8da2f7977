package classifier

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	bridge "github.com/wippyai/classifier-bridge"
	"github.com/wippyai/classifier-bridge/accessor"
	"github.com/wippyai/classifier-bridge/engine"
	"github.com/wippyai/classifier-bridge/errors"
	"github.com/wippyai/classifier-bridge/frame"
	"github.com/wippyai/classifier-bridge/marshal"
	"github.com/wippyai/classifier-bridge/resource"
)

// EngineTypeID tags classifier instances in the handle table.
const EngineTypeID uint32 = 1

// instance pairs an engine with its log correlation ID. Dropping an
// instance closes the engine, so table removal is the one place destruction
// happens.
type instance struct {
	eng engine.Engine
	id  string
	log *zap.Logger
}

func (i *instance) Drop() {
	if err := i.eng.Close(); err != nil {
		i.log.Warn("engine close failed",
			zap.String("instance_id", i.id),
			zap.Error(err),
		)
	}
}

// Bridge drives a native classification engine on behalf of a managed
// caller. Construct with New.
//
// A Bridge is safe for concurrent use across distinct handles; operations
// on one handle must be serialized by the caller.
type Bridge struct {
	factory engine.Factory
	table   *resource.Table
	acc     *accessor.Accessor
	log     *zap.Logger
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithLogger overrides the layer logger for this bridge.
func WithLogger(l *zap.Logger) Option {
	return func(b *Bridge) {
		if l != nil {
			b.log = l
		}
	}
}

// New creates a Bridge over the given engine factory.
func New(factory engine.Factory, opts ...Option) *Bridge {
	b := &Bridge{
		factory: factory,
		table:   resource.NewTable(),
		acc:     accessor.New(),
		log:     engine.Logger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.table.Subscribe(&logObserver{log: b.log})
	return b
}

// Initialize marshals the managed options object, stamps the model
// descriptor into it and constructs one engine instance. On success the
// instance's handle is returned. On failure the env's Thrower is raised
// exactly once and the invalid sentinel is returned; the sentinel must not
// be used further.
func (b *Bridge) Initialize(env bridge.Env, fd int, length, offset int64, options any) resource.Handle {
	h, err := b.initialize(fd, length, offset, options)
	if err != nil {
		throwInitialize(env, err)
		return resource.Invalid
	}
	return h
}

func (b *Bridge) initialize(fd int, length, offset int64, options any) (resource.Handle, *errors.Error) {
	opts, err := marshal.Options(b.acc, options)
	if err != nil {
		return resource.Invalid, errors.From(errors.PhaseMarshal, err)
	}
	opts.ModelFile = engine.FileDescriptorMeta{FD: fd, Length: length, Offset: offset}

	eng, err := b.factory(opts)
	if err != nil {
		return resource.Invalid, errors.From(errors.PhaseInit, err)
	}
	if eng == nil {
		return resource.Invalid, errors.NilValue(errors.PhaseInit, "engine from factory")
	}

	inst := &instance{eng: eng, id: uuid.NewString(), log: b.log}
	h := b.table.Insert(EngineTypeID, inst)
	if h == resource.Invalid {
		inst.Drop()
		return resource.Invalid, errors.New(errors.PhaseInit, errors.KindInvalidHandle).
			Detail("bridge is closed").
			Build()
	}
	return h, nil
}

// Classify wraps the managed pixel buffer in a zero-copy frame descriptor,
// runs inference on the handle's engine and marshals the result into the
// env's object model. On failure the env's Thrower is raised exactly once
// and nil is returned. The buffer is borrowed only for the duration of this
// call.
func (b *Bridge) Classify(env bridge.Env, h resource.Handle, buf bridge.ByteBuffer, width, height int) bridge.List {
	result, err := b.classify(env, h, buf, width, height)
	if err != nil {
		throwClassify(env, err)
		return nil
	}
	return result
}

func (b *Bridge) classify(model bridge.ObjectModel, h resource.Handle, buf bridge.ByteBuffer, width, height int) (bridge.List, *errors.Error) {
	v, ok := b.table.GetTyped(h, EngineTypeID)
	if !ok {
		return nil, errors.InvalidHandle(errors.PhaseClassify, uint32(h))
	}
	inst := v.(*instance)

	f, err := frame.FromByteBuffer(buf, width, height)
	if err != nil {
		return nil, errors.From(errors.PhaseFrame, err)
	}

	res, err := inst.eng.Classify(f)
	if err != nil {
		return nil, errors.From(errors.PhaseClassify, err)
	}

	groups, err := marshal.Results(model, res)
	if err != nil {
		return nil, errors.From(errors.PhaseResults, err)
	}

	b.log.Debug("classified frame",
		zap.String("instance_id", inst.id),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("groups", groups.Len()),
	)
	return groups, nil
}

// Release destroys the engine instance behind the handle. It never raises:
// the invalid sentinel, an unknown handle and a repeated release are all
// no-ops.
func (b *Bridge) Release(h resource.Handle) {
	if h == resource.Invalid {
		return
	}
	b.table.Remove(h)
}

// Len returns the number of live engine instances.
func (b *Bridge) Len() int {
	return b.table.Len()
}

// Close releases every live instance and stops accepting new ones. Handles
// minted before Close are invalid afterwards.
func (b *Bridge) Close() error {
	return b.table.Close()
}

// logObserver mirrors table lifecycle events into the zap logger.
type logObserver struct {
	log *zap.Logger
}

func (o *logObserver) OnResourceEvent(e resource.Event) {
	inst, ok := e.Value.(*instance)
	if !ok {
		return
	}
	switch e.Type {
	case resource.EventCreated:
		o.log.Info("engine instance created",
			zap.Uint32("handle", uint32(e.Handle)),
			zap.String("instance_id", inst.id),
		)
	case resource.EventDropped:
		o.log.Info("engine instance released",
			zap.Uint32("handle", uint32(e.Handle)),
			zap.String("instance_id", inst.id),
		)
	}
}
