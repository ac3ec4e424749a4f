// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package osx contains extensions to the os package.
package osx

import "io/fs"

// File permission bits, which package os does not name. The names follow
// chmod: U, G and O are the user, group and other classes, and R and W are
// read and write.
const (
	PermUR fs.FileMode = 0o400
	PermUW fs.FileMode = 0o200
	PermGR fs.FileMode = 0o40
	PermOR fs.FileMode = 0o4

	PermAR = PermUR | PermGR | PermOR
)

// PermGenerated is the mode of files that tools write into the source tree,
// such as generated code and refreshed golden files.
const PermGenerated = PermAR | PermUW
