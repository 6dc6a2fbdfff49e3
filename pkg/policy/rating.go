// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package policy

// Rating places a commit history on an ordinal bump-severity scale. Higher
// ratings demand bigger version bumps and always win over lower ones.
type Rating int

const (
	RatingUndefined   Rating = 0
	RatingNoop        Rating = 10
	RatingLocal       Rating = 20
	RatingDevelopment Rating = 30
	RatingPost        Rating = 40
	RatingPreRelease  Rating = 50
	RatingMicro       Rating = 60
	RatingMinor       Rating = 70
	RatingMajor       Rating = 80
	RatingEpoch       Rating = 90
)

// String implements fmt.Stringer.
func (r Rating) String() string {
	switch r {
	case RatingNoop:
		return "noop"
	case RatingLocal:
		return "local"
	case RatingDevelopment:
		return "development"
	case RatingPost:
		return "post"
	case RatingPreRelease:
		return "pre-release"
	case RatingMicro:
		return "micro"
	case RatingMinor:
		return "minor"
	case RatingMajor:
		return "major"
	case RatingEpoch:
		return "epoch"
	default:
		return "undefined"
	}
}
