package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	dishmemory "github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/adapters/memory"
	dishdomain "github.com/Apurer/go-gin-restaurant-api/internal/domains/dishes/domain"
	ordermemory "github.com/Apurer/go-gin-restaurant-api/internal/domains/orders/adapters/memory"
	orderapp "github.com/Apurer/go-gin-restaurant-api/internal/domains/orders/application"
	ordertypes "github.com/Apurer/go-gin-restaurant-api/internal/domains/orders/application/types"
	usermemory "github.com/Apurer/go-gin-restaurant-api/internal/domains/users/adapters/memory"
	userdomain "github.com/Apurer/go-gin-restaurant-api/internal/domains/users/domain"
)

func TestService_GetMarksUnresolvedReferences(t *testing.T) {
	ctx := context.Background()
	dishes := dishmemory.NewRepository()
	users := usermemory.NewRepository()
	_, err := dishes.Save(ctx, &dishdomain.Dish{Name: "Pizza", Price: 10})
	require.NoError(t, err)
	_, err = users.Save(ctx, &userdomain.User{Name: "Ali", Phone: 24600900})
	require.NoError(t, err)

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	svc := New(orderapp.NewService(ordermemory.NewRepository(), users, dishes), WithTracer(tp.Tracer("test")))

	order, err := svc.Add(ctx, ordertypes.AddOrderCommand{UserID: 1, DishID: 1})
	require.NoError(t, err)
	require.NoError(t, dishes.Delete(ctx, 1))

	enriched, err := svc.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Nil(t, enriched.Dish)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Contains(t, spans[1].Attributes(), attribute.Bool("order.dish_resolved", false))
	assert.Contains(t, spans[1].Attributes(), attribute.Bool("order.user_resolved", true))
}
