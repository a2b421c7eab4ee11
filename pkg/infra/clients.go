package infra

import (
	"github.com/gitoon/gitoon/pkg/domain/interfaces"
	"github.com/gitoon/gitoon/pkg/domain/types"
	"github.com/gitoon/gitoon/pkg/repository/memory"
)

// Clients bundles every external collaborator of the pipeline. Generation
// requires a commit source and both models; publishers are optional and
// keyed by delivery channel.
type Clients struct {
	commitSource interfaces.CommitSource
	textModel    interfaces.TextModel
	imageModel   interfaces.ImageModel
	stripRepo    interfaces.StripRepository
	publishers   map[types.DeliveryChannel]interfaces.Publisher
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		stripRepo:  memory.New(),
		publishers: map[types.DeliveryChannel]interfaces.Publisher{},
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) CommitSource() interfaces.CommitSource {
	return x.commitSource
}
func (x *Clients) TextModel() interfaces.TextModel {
	return x.textModel
}
func (x *Clients) ImageModel() interfaces.ImageModel {
	return x.imageModel
}
func (x *Clients) StripRepository() interfaces.StripRepository {
	return x.stripRepo
}

// Publisher returns the publisher bound to the channel, or nil when the
// channel is not configured.
func (x *Clients) Publisher(channel types.DeliveryChannel) interfaces.Publisher {
	return x.publishers[channel]
}

func WithCommitSource(source interfaces.CommitSource) Option {
	return func(x *Clients) {
		x.commitSource = source
	}
}

func WithTextModel(model interfaces.TextModel) Option {
	return func(x *Clients) {
		x.textModel = model
	}
}

func WithImageModel(model interfaces.ImageModel) Option {
	return func(x *Clients) {
		x.imageModel = model
	}
}

func WithStripRepository(repo interfaces.StripRepository) Option {
	return func(x *Clients) {
		x.stripRepo = repo
	}
}

func WithPublisher(channel types.DeliveryChannel, publisher interfaces.Publisher) Option {
	return func(x *Clients) {
		x.publishers[channel] = publisher
	}
}
