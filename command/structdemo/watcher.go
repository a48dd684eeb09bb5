// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
)

const (
	fileWatcherLoggerPrefix = "file-watcher"
)

type watcherChannels struct {
	change chan struct{}
	remove chan struct{}
}

// fileWatcher - signal when the configuration file is modified or
// removed so the demos can be re-run
type fileWatcher struct {
	log      *logger.L
	channels watcherChannels
	watcher  *fsnotify.Watcher
	filePath string
	shutdown chan struct{}
	done     chan struct{}
}

func newFileWatcher(targetFile string, log *logger.L, channels watcherChannels) (*fileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		channels: channels,
		watcher:  watcher,
		filePath: filePath,
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// Start - begin watching in the background
func (w *fileWatcher) Start() error {
	err := w.watcher.Add(w.filePath)
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	go w.loop()
	return nil
}

// Stop - end the background loop and release the watcher
func (w *fileWatcher) Stop() {
	close(w.shutdown)
	<-w.done
	w.watcher.Close()
}

func (w *fileWatcher) loop() {
	defer close(w.done)

	for {
		select {
		case <-w.shutdown:
			return

		case err := <-w.watcher.Errors:
			w.log.Warnf("watcher error: %s", err)

		case event := <-w.watcher.Events:
			w.log.Infof("file event: %v", event)

			if eventIsRemove(event) {
				w.log.Errorf("file %s removed, stop", w.filePath)
				w.sendEvent(w.channels.remove, "remove")
				return
			}

			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				w.log.Infof("file %s not match, discard event", event.Name)
				continue
			}

			if eventIsChange(event) {
				w.log.Info("sending config change event…")
				w.sendEvent(w.channels.change, "change")
			}
		}
	}
}

func (w *fileWatcher) isChannelFull(ch chan<- struct{}) bool {
	return len(ch) == cap(ch)
}

// never blocks, a pending event already covers this one
func (w *fileWatcher) sendEvent(ch chan<- struct{}, name string) {
	if !w.isChannelFull(ch) {
		ch <- struct{}{}
	} else {
		w.log.Infof("event channel %s full, discard event", name)
	}
}

func eventIsRemove(event fsnotify.Event) bool {
	return "" == event.Name ||
		event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func eventIsChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
