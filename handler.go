package ftracker

import (
	"context"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	echoadapter "github.com/awslabs/aws-lambda-go-api-proxy/echo"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const (
	sessionName = "ftracker"
	historyKey  = "history"
	historySize = 10
)

// ReportResponse is the body returned for a successfully read package
type ReportResponse struct {
	Info    InfoMessage `json:"info"`
	Message string      `json:"message"`
}

type LambdaFunc func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// LambdaHandler proxies API Gateway requests to the echo engine
func LambdaHandler(el *echoadapter.EchoLambda) LambdaFunc {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		log.Info().Str("method", req.HTTPMethod).Str("path", req.Path).Msg("lambda")
		return el.ProxyWithContext(ctx, req)
	}
}

func history(c echo.Context) []string {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return nil
	}
	h, _ := sess.Values[historyKey].([]string)
	return h
}

func remember(c echo.Context, msg string) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	h, _ := sess.Values[historyKey].([]string)
	h = append(h, msg)
	if len(h) > historySize {
		h = h[len(h)-historySize:]
	}
	sess.Values[historyKey] = h
	return sess.Save(c.Request(), c.Response())
}

// ReportHandler reads the posted package and returns its summary and report line
func ReportHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		var pkg Package
		if err := c.Bind(&pkg); err != nil {
			return err
		}
		training, err := ReadPackage(pkg.Code, pkg.Data)
		if err != nil {
			var unknown *UnknownWorkoutTypeError
			var count *FieldCountError
			if errors.As(err, &unknown) || errors.As(err, &count) {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}
			return err
		}
		info := ShowTrainingInfo(training)
		if !info.Finite() {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "workout produced non-finite values")
		}
		msg := info.Message()
		reportsTotal.WithLabelValues(info.TrainingType).Inc()
		if err := remember(c, msg); err != nil {
			log.Error().Err(err).Msg("session")
		}
		return c.JSON(http.StatusOK, &ReportResponse{Info: info, Message: msg})
	}
}

// HistoryHandler returns the most recent report lines of the session
func HistoryHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		h := history(c)
		if h == nil {
			h = []string{}
		}
		return c.JSON(http.StatusOK, h)
	}
}
