package repo

import (
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("repo", fx.Provide(
		NewPet,
		NewAudit,
		NewTutor,
		NewVisit,
		NewAgenda,
		NewBackup,
		NewFinance,
		NewProfile,
		NewVaccine,
		NewInventory,
		NewWorkspace,
		NewAttachment,
	))
}
