package container

import (
	app "chase-cover/internal/application"
	"chase-cover/internal/domain/port"
)

// Deps инфраструктура, из которой собираются сервисы.
type Deps struct {
	Packages       port.PackageRepository
	Drafts         port.DraftRepository
	Sketch         port.SketchRenderer
	Preview        port.SketchRenderer
	Outline        port.OutlineEmitter
	Normalizer     port.PhotoNormalizer
	Inspector      port.PhotoInspector
	Mailer         port.Mailer
	EncodeSnapshot app.SnapshotEncoder
	ShopEmail      string
}

type Container struct {
	Packages           port.PackageRepository
	DraftService       *app.DraftService
	MeasurementService *app.MeasurementService
	DispatchService    *app.DispatchService
}

func New(deps Deps) *Container {
	draftService := app.NewDraftService(deps.Drafts)
	measurementService := app.NewMeasurementService(
		deps.Packages, deps.Sketch, deps.Preview, deps.Outline, deps.Normalizer, deps.Inspector,
	)
	dispatchService := app.NewDispatchService(deps.Packages, deps.Mailer, deps.EncodeSnapshot, deps.ShopEmail)

	return &Container{
		Packages:           deps.Packages,
		DraftService:       draftService,
		MeasurementService: measurementService,
		DispatchService:    dispatchService,
	}
}
