package app

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/talkincode/backoffice/internal/notify"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

const (
	JobPruneToasts     = "prune_toasts"
	JobBackendProbe    = "backend_probe"
	healthProbeTimeout = 5 * time.Second
)

// ErrUnknownJob is returned by RunJobNow for names not in the schedule
var ErrUnknownJob = errors.New("unknown job")

// JobInfo describes a scheduled background job
type JobInfo struct {
	Name    string    `json:"name"`
	Spec    string    `json:"spec"`
	PrevRun time.Time `json:"prev_run"`
	NextRun time.Time `json:"next_run"`
}

type job struct {
	spec string
	run  func()
	id   cron.EntryID
}

func (a *Application) jobTable() map[string]*job {
	return map[string]*job{
		JobPruneToasts:  {spec: "@every 1m", run: a.SchedPruneToasts},
		JobBackendProbe: {spec: "@every 30s", run: a.SchedBackendProbe},
	}
}

// StartJobs schedules the background jobs and starts the cron runner
func (a *Application) StartJobs() {
	loc, err := time.LoadLocation(a.appConfig.System.Location)
	if err != nil {
		loc = time.Local
	}
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))
	a.jobs = a.jobTable()

	for name, j := range a.jobs {
		j.id, err = a.sched.AddFunc(j.spec, j.run)
		if err != nil {
			zap.S().Errorf("init job %s error %s", name, err.Error())
		}
	}

	a.sched.Start()
	go a.SchedBackendProbe()
}

// Jobs lists the scheduled jobs ordered by name
func (a *Application) Jobs() []JobInfo {
	jobs := a.jobs
	if jobs == nil {
		jobs = a.jobTable()
	}
	out := make([]JobInfo, 0, len(jobs))
	for name, j := range jobs {
		info := JobInfo{Name: name, Spec: j.spec}
		if a.sched != nil {
			e := a.sched.Entry(j.id)
			info.PrevRun, info.NextRun = e.Prev, e.Next
		}
		out = append(out, info)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].Name < out[k].Name })
	return out
}

// RunJobNow runs a job synchronously outside its schedule
func (a *Application) RunJobNow(name string) error {
	j, ok := a.jobs[name]
	if !ok {
		j, ok = a.jobTable()[name]
	}
	if !ok {
		return errors.Wrap(ErrUnknownJob, name)
	}
	j.run()
	return nil
}

// SchedPruneToasts drops expired notifications
func (a *Application) SchedPruneToasts() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()
	if n := a.notifier.Store().Prune(time.Now()); n > 0 {
		zap.L().Debug("expired toasts pruned", zap.String("namespace", "app"), zap.Int("count", n))
	}
}

// SchedBackendProbe pings the backend and reports availability changes
func (a *Application) SchedBackendProbe() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()
	ctx, cancel := context.WithTimeout(context.Background(), healthProbeTimeout)
	defer cancel()

	err := a.client.Ping(ctx)
	up := err == nil
	if a.healthy.Swap(up) == up {
		return
	}
	if up {
		zap.L().Info("backend is reachable again", zap.String("namespace", "app"))
		a.Notify(notify.Info("backend", "Backend available", a.client.BaseURL()))
		return
	}
	zap.L().Warn("backend is unreachable", zap.String("namespace", "app"), zap.Error(err))
	a.Notify(notify.Error("backend", "Backend unavailable", err))
}
