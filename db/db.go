package db

import "context"

type DBType string

const (
	Postgres DBType = "postgres"
	Mongo    DBType = "mongo"
)

// DB is the explicitly constructed storage handle passed into the
// repositories; connections are opened in main and torn down on exit.
type DB interface {
	Connect() error
	Disconnect() error
	GetContext() context.Context
}
