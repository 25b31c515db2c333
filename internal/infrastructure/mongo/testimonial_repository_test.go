package mongo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestTestimonialFindAllSortsNewestFirst(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find carries a date descending sort", func(mt *mtest.T) {
		newest := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "content", Value: "Une séance inoubliable"},
			{Key: "date", Value: "2026-08-20"},
		}
		oldest := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "content", Value: "Première expérience, très encadrée"},
			{Key: "date", Value: "2026-07-02"},
		}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, "damemahigan.testimonials", mtest.FirstBatch, newest, oldest),
			mtest.CreateCursorResponse(0, "damemahigan.testimonials", mtest.NextBatch),
		)

		repo := NewTestimonialRepository(mt.DB, "testimonials")
		testimonials, err := repo.FindAll(context.Background())
		require.NoError(mt, err)
		require.Len(mt, testimonials, 2)
		assert.Equal(mt, "2026-08-20", testimonials[0].Date)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		require.Equal(mt, "find", started.CommandName)

		raw, err := started.Command.LookupErr("sort")
		require.NoError(mt, err, "the find must request a server-side sort")
		var sort bson.D
		require.NoError(mt, raw.Unmarshal(&sort))
		assert.Equal(mt, bson.D{{Key: "date", Value: int32(-1)}}, sort)
	})
}
