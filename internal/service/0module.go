package service

import (
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("service", fx.Provide(
		NewPet,
		NewSeed,
		NewUser,
		NewAudit,
		NewTutor,
		NewVisit,
		NewAgenda,
		NewBackup,
		NewHealth,
		NewAccount,
		NewFinance,
		NewOptions,
		NewVaccine,
		NewInventory,
		NewAttachment,
		NewDashboard,
	))
}
