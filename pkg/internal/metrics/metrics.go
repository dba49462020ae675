package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PostsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hobbyhub_posts_created_total",
		Help: "Posts created, by origin.",
	}, []string{"origin"})

	PostsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hobbyhub_posts_deleted_total",
		Help: "Posts deleted with a verified author key.",
	})

	Upvotes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hobbyhub_upvotes_total",
		Help: "Upvotes applied to posts.",
	})

	CommentWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hobbyhub_comment_writes_total",
		Help: "Comment list writes, by action and outcome.",
	}, []string{"action", "outcome"})

	AuthorKeyChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hobbyhub_author_key_checks_total",
		Help: "Author key verifications, by result.",
	}, []string{"result"})

	SignIns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hobbyhub_sign_ins_total",
		Help: "Successful account sign-ins.",
	})
)
