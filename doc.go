/*
 * Copyright 2023 The gorpsl authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *       http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

/*
Package gorpsl parses RPSL (Routing Policy Specification Language) text into
structured, attribute-ordered objects.

# RPSL

RPSL is the text format used by internet routing registries to describe
routing policy. An object is a run of "name: value" attribute lines terminated
by a blank line; an attribute value may continue over several physical lines.

To learn more about the format, read RFC 2622.

# Parse RPSL objects

[ParseObject] parses a single object and [ParseWhoisResponse] parses every
object contained in a whois server response. Both return views which reference
the input text instead of copying it, which makes them suitable for bulk
parsing of whole IRR database dumps. A view is valid for as long as the input
string is reachable; convert it with [ObjectView.ToOwned] to get an [Object]
with independent storage. Go strings are immutable, so views may be read
concurrently without synchronization.

Use [ParseObjectOwned] or [ParseWhoisResponseOwned] to get owned objects
directly.

For bulk input of varying quality, a [Parser] created with [NewParser] can be
configured with [WithSyntaxErrorPolicy] to skip unparseable lines instead of
failing, collecting them in a [Validation].

# Create RPSL objects

The [ObjectBuilder] constructs objects directly from attribute names and
values, bypassing the text grammar. Objects and views render back to canonical
RPSL text with their Write and String methods.
*/
package gorpsl
