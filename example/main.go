package main

import (
	"time"

	"github.com/mgnsk/intrusive"
	"github.com/mgnsk/intrusive/cache"
	"github.com/sirupsen/logrus"
)

type request struct {
	intrusive.Links[request]
	id int
}

type requestQueue = intrusive.List[request, intrusive.Embedded[request, *request]]

func main() {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	var q requestQueue
	for i := 1; i <= 3; i++ {
		q.PushBack(&request{id: i})
	}

	c := cache.New[int, string](
		cache.WithCapacity(2),
		cache.WithPolicy(cache.LRU),
		cache.WithTTL(time.Minute),
		cache.WithLogger(logger),
	)
	defer c.Close()

	for r, ok := q.PopFront(); ok; r, ok = q.PopFront() {
		if _, err := c.Set(r.id, "served"); err != nil {
			logger.WithError(err).Fatal("storing response")
		}
		logger.WithField("id", r.id).Info("served request")
	}

	logger.WithField("keys", c.Keys()).Info("cached responses")
}
