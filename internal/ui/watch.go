package ui

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/kyaoi/mdstyle/internal/article"
)

type fileEventMsg struct {
	path string
	op   fsnotify.Op
}

type fileWatchErrMsg struct {
	err error
}

func (m *Model) startWatching(path string) tea.Cmd {
	if path == "" {
		return nil
	}
	path = filepath.Clean(path)
	if err := m.ensureWatcher(); err != nil {
		m.err = err
		m.log.Error(err, "file watcher unavailable")
		return nil
	}

	// Watching the directory survives editors that replace the file on save.
	dir := filepath.Dir(path)
	if dir != m.watchDir {
		if m.watchDir != "" {
			_ = m.watcher.Remove(m.watchDir)
		}
		if err := m.watcher.Add(dir); err != nil {
			m.err = err
			m.log.Error(err, "watch article directory")
			return nil
		}
		m.watchDir = dir
	}

	m.watchedFile = path
	return m.waitForFileEvent()
}

func (m *Model) ensureWatcher() error {
	if m.watcher != nil {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	m.watcher = watcher
	m.watchChan = make(chan tea.Msg, 10)
	m.watchDone = make(chan struct{})

	go watchLoop(watcher, m.watchChan, m.watchDone)
	return nil
}

// watchLoop forwards watcher events to out until the watcher stops or done is
// closed. out is closed on return.
func watchLoop(watcher *fsnotify.Watcher, out chan<- tea.Msg, done <-chan struct{}) {
	defer close(out)
	for {
		var msg tea.Msg
		select {
		case <-done:
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			msg = fileEventMsg{path: event.Name, op: event.Op}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			msg = fileWatchErrMsg{err: err}
		}
		select {
		case out <- msg:
		case <-done:
			return
		}
	}
}

func (m *Model) waitForFileEvent() tea.Cmd {
	ch := m.watchChan
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

func (m *Model) handleFileEvent(msg fileEventMsg) tea.Cmd {
	if m.watchedFile == "" || filepath.Clean(msg.path) != m.watchedFile {
		return m.waitForFileEvent()
	}
	if msg.op&fsnotify.Remove == 0 {
		m.reloadArticle()
	}
	return m.waitForFileEvent()
}

// reloadArticle re-reads the watched article, keeping the scroll position.
func (m *Model) reloadArticle() {
	if m.article.Path == "" {
		return
	}
	a, err := article.Load(m.article.Path)
	if err != nil {
		m.err = err
		m.log.Error(err, "article reload failed")
		return
	}

	offset := m.contentVP.YOffset
	m.article = a
	m.renderArticle()
	if m.err == nil {
		m.contentVP.SetYOffset(offset)
	}
	m.log.WithFields(map[string]any{"path": a.Path}).Debug("article reloaded")
}
