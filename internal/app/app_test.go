package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/loadermarket/pkg/workerpool"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWaitCleanShutdown() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.NoError(s.app.Wait(ctx, cancel))
}

func (s *ApplicationSuite) TestPoolsClosedOnShutdown() {
	ctrl := gomock.NewController(s.T())
	notifyPool := workerpool.NewMockWorkerPoolI(ctrl)
	countdownPool := workerpool.NewMockWorkerPoolI(ctrl)
	notifyPool.EXPECT().Close().Times(1)
	countdownPool.EXPECT().Close().Times(1)
	s.app.pools = []workerpool.WorkerPoolI{notifyPool, countdownPool}

	ctx, cancel := context.WithCancel(context.Background())
	s.app.closePoolsOnShutdown(ctx)
	cancel()

	s.NoError(s.app.Wait(ctx, cancel))
}
