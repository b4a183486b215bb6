// Copyright 2024 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package types

import "errors"

// ErrInvalidBlock is the umbrella sentinel every consensus-level rejection
// wraps: header mismatches, failed admission checks, a present ommer, a
// computed commitment that disagrees with the header. The core has exactly
// one rejection outcome; where package core has a specific sentinel for the
// cause, that sentinel is wrapped alongside this one, so errors.Is matches
// both ErrInvalidBlock and the specific cause.
var ErrInvalidBlock = errors.New("invalid block")

// ErrInvalidSignature is raised by signature recovery and is always wrapped
// into ErrInvalidBlock by its caller before leaving the core.
var ErrInvalidSignature = errors.New("invalid signature")
