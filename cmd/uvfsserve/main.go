//
//  Copyright 2026 The uvfs authors
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//  	http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

// Command uvfsserve loads a mountconfig file and serves its union
// hierarchy over HTTP.
package main

import (
	"flag"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/unionvfs/uvfs/httpvfs"
	"github.com/unionvfs/uvfs/mount"
	"github.com/unionvfs/uvfs/mountconfig"
)

func main() {
	configPath := flag.String("config", "uvfsserve.cfg", "mountconfig file describing the mounts to serve")
	addr := flag.String("addr", ":8080", "address to listen on")
	flag.Parse()

	log := logrus.StandardLogger()

	specs, err := mountconfig.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("uvfsserve: loading config")
	}

	engine := mount.New(mount.WithLogger(log))

	if err := mountconfig.Apply(engine, specs); err != nil {
		log.WithError(err).Fatal("uvfsserve: applying mounts")
	}

	log.WithField("addr", *addr).Info("uvfsserve: listening")

	if err := http.ListenAndServe(*addr, httpvfs.Handler(engine)); err != nil {
		log.WithError(err).Fatal("uvfsserve: server exited")
	}
}
