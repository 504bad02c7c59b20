package services

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// TxRunner runs a function inside a data-store transaction. Every read and
// write issued through the function's context joins the transaction; if the
// function returns an error the transaction is aborted and none of its writes
// become visible.
type TxRunner interface {
	RunTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// MongoTxRunner implements TxRunner over a Mongo client session.
type MongoTxRunner struct {
	Client *mongo.Client
}

func NewMongoTxRunner(client *mongo.Client) *MongoTxRunner {
	return &MongoTxRunner{Client: client}
}

// RunTransaction starts a session and executes fn under WithTransaction. The
// driver commits on a nil return and aborts on error; transient-error retries
// follow the driver's defaults.
func (r *MongoTxRunner) RunTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := r.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
