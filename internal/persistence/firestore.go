package persistence

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const defaultSnapshotCollection = "snapshots"

// Firestore is a Store backed by a Firestore collection, one document per
// key.
type Firestore struct {
	client     *firestore.Client
	collection string
}

type snapshotDoc struct {
	Data []byte `firestore:"data"`
}

// OpenFirestoreClient initializes the Firebase Admin SDK and returns a
// Firestore client. With an empty credentials file path it falls back to
// Application Default Credentials.
func OpenFirestoreClient(ctx context.Context, projectID, credentialsFile string) (*firestore.Client, error) {
	conf := &firebase.Config{ProjectID: projectID}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialize firestore client: %w", err)
	}
	return client, nil
}

// NewFirestore wraps an existing Firestore client. An empty collection name
// selects the default collection.
func NewFirestore(client *firestore.Client, collection string) *Firestore {
	if collection == "" {
		collection = defaultSnapshotCollection
	}
	return &Firestore{client: client, collection: collection}
}

func (f *Firestore) Put(ctx context.Context, key string, value []byte) error {
	_, err := f.client.Collection(f.collection).Doc(key).Set(ctx, snapshotDoc{Data: value})
	if err != nil {
		return fmt.Errorf("set snapshot %q: %w", key, err)
	}
	return nil
}

func (f *Firestore) Get(ctx context.Context, key string) ([]byte, error) {
	snap, err := f.client.Collection(f.collection).Doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get snapshot %q: %w", key, err)
	}
	var doc snapshotDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("decode snapshot %q: %w", key, err)
	}
	return doc.Data, nil
}

func (f *Firestore) Delete(ctx context.Context, key string) error {
	if _, err := f.client.Collection(f.collection).Doc(key).Delete(ctx); err != nil {
		return fmt.Errorf("delete snapshot %q: %w", key, err)
	}
	return nil
}
