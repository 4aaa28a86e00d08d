package app

import (
	"database/sql"

	"github.com/ferdiebergado/notesvc/internal/platform/db"
	"github.com/ferdiebergado/notesvc/internal/platform/router"
	"github.com/ferdiebergado/notesvc/internal/platform/validation"
)

type Provider struct {
	DB        *sql.DB
	Validator validation.Validator
	Router    router.Router
	TxMgr     db.TxManager
}

func newProvider(dbConn *sql.DB) *Provider {
	router := router.NewGoexpressRouter()
	validator := validation.NewGoPlaygroundValidator()
	txMgr := db.NewSQLTxManager(dbConn)

	return &Provider{
		DB:        dbConn,
		Router:    router,
		Validator: validator,
		TxMgr:     txMgr,
	}
}
