/*
* MIT License
*
* Copyright (c) 2017 Mike Taghavi <mitghi[at]me.com>
*
* Permission is hereby granted, free of charge, to any person obtaining a copy
* of this software and associated documentation files (the "Software"), to deal
* in the Software without restriction, including without limitation the rights
* to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
* copies of the Software, and to permit persons to whom the Software is
* furnished to do so, subject to the following conditions:
*
* The above copyright notice and this permission notice shall be included in all
* copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
* IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
* FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
* AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
* LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
* OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
* SOFTWARE.
 */

// Package reclaim provides a substrate for safe concurrent memory
// reclamation in lock-free data structures: a tagged atomic pointer
// primitive, an ownership-typed pointer discipline (owned, shared,
// unlinked, unprotected), and the abstract contracts a concrete
// reclamation scheme (epoch-based, hazard pointers, quiescent-state,
// or the "leaking" reference scheme in the leak subpackage) must
// satisfy.
//
// The package does not itself decide when memory is reclaimed. It
// gives data-structure authors a small, statically-checked vocabulary
// for the difference between "I loaded this pointer and I promise not
// to let go of it while I deref it" (Shared), "I just unlinked this
// and it's mine to hand to a reclaimer" (Unlinked), and "I loaded this
// with no protection at all and dereferencing it is my problem"
// (Unprotected).
package reclaim
