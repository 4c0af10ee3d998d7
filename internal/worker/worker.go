package worker

import "sync"

// Task 為背景執行的工作單元
type Task func()

// Pool 背景工作池，聯絡人異動流程用它非同步清理汰換的頭像檔
// Stop 之後不可再 Submit；停機時先停路由再停池
type Pool interface {
	Submit(Task)
	Stop()
}

// NewPool 啟動 n 個 worker，n 小於 1 時視為 1
// 佇列帶緩衝，清理尖峰時 Submit 不會卡住請求
func NewPool(n int) Pool {
	if n < 1 {
		n = 1
	}
	p := &pool{jobs: make(chan Task, n*16)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.drain()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
}

func (p *pool) drain() {
	defer p.wg.Done()
	for job := range p.jobs {
		if job == nil {
			continue
		}
		job()
	}
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
